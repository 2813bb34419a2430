package mongodb

import (
	"context"
	"fmt"
	"time"

	"blogsum/blogsum/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogDocument is the full-content record kept in the document store. The
// content field is capped before it gets here; the row store keeps only the
// summary pair.
type BlogDocument struct {
	URL       string    `bson:"url"`
	Title     string    `bson:"title"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"createdAt"`
}

type Client struct {
	client *mongo.Client
	blogs  *mongo.Collection
}

func NewClient(cfg config.Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("can't ping MongoDB: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)
	return &Client{
		client: client,
		blogs:  db.Collection(cfg.MongoCollection),
	}, nil
}

// SaveBlog inserts one document. A single insert, no upsert, no retry.
func (c *Client) SaveBlog(ctx context.Context, doc BlogDocument) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := c.blogs.InsertOne(ctx, doc)
	return err
}

func (c *Client) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}
