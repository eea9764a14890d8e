package repository

import (
	"context"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type pricingTierItem struct {
	ID            string  `dynamodbav:"id"`
	Name          string  `dynamodbav:"name"`
	OriginalPrice float64 `dynamodbav:"original_price"`
	SellingPrice  float64 `dynamodbav:"selling_price"`
}

type serviceItem struct {
	ID           string            `dynamodbav:"id"`
	Name         string            `dynamodbav:"name"`
	CategoryID   string            `dynamodbav:"category_id"`
	PricingTiers []pricingTierItem `dynamodbav:"pricing_tiers"`
	Duration     int               `dynamodbav:"duration"`
	Images       []string          `dynamodbav:"images,omitempty"`
}

type productItem struct {
	ID     string   `dynamodbav:"id"`
	Name   string   `dynamodbav:"name"`
	Price  float64  `dynamodbav:"price"`
	Images []string `dynamodbav:"images,omitempty"`
}

// CatalogDynamoRepository reads services and products. Catalog tables are
// maintained outside this service.
//
// Table requirements (both tables):
//   - PK: id (string)
type CatalogDynamoRepository struct {
	ddb           DynamoAPI
	servicesTable string
	productsTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoAPI, servicesTable, productsTable string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, servicesTable: servicesTable, productsTable: productsTable}
}

func (r *CatalogDynamoRepository) GetService(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.servicesTable),
		Key:       stringKey("id", id),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}
	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	s := entities.Service{
		ID:         it.ID,
		Name:       it.Name,
		CategoryID: it.CategoryID,
		Duration:   it.Duration,
		Images:     it.Images,
	}
	for _, t := range it.PricingTiers {
		s.PricingTiers = append(s.PricingTiers, entities.PricingTier{
			ID:            t.ID,
			Name:          t.Name,
			OriginalPrice: t.OriginalPrice,
			SellingPrice:  t.SellingPrice,
		})
	}
	return s, nil
}

func (r *CatalogDynamoRepository) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.productsTable),
		Key:       stringKey("id", id),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return entities.Product{ID: it.ID, Name: it.Name, Price: it.Price, Images: it.Images}, nil
}
