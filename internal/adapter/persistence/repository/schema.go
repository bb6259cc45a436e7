package repository

import (
	"context"

	"socialdots/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TableNames maps every table the service uses to its physical name.
type TableNames struct {
	Services            string
	PricingPlans        string
	Projects            string
	BlogPosts           string
	PortfolioCategories string
	Portfolios          string
	Testimonials        string
	TeamMembers         string
	SiteConfiguration   string
	Leads               string
	Orders              string
	CalendarEvents      string
	AgentLogs           string
	Integrations        string
}

// IndexSpec is a global secondary index projecting all attributes.
type IndexSpec struct {
	Name     string
	HashKey  string
	RangeKey string
}

type TableSpec struct {
	Name    string
	HashKey string
	Indexes []IndexSpec
}

// Schemas describes the key layout every repository expects.
func Schemas(t TableNames) []TableSpec {
	slug := []IndexSpec{{Name: slugIndex, HashKey: "slug"}}
	return []TableSpec{
		{Name: t.Services, HashKey: "id", Indexes: slug},
		{Name: t.PricingPlans, HashKey: "id"},
		{Name: t.Projects, HashKey: "id", Indexes: slug},
		{Name: t.BlogPosts, HashKey: "id", Indexes: slug},
		{Name: t.PortfolioCategories, HashKey: "id", Indexes: slug},
		{Name: t.Portfolios, HashKey: "id", Indexes: slug},
		{Name: t.Testimonials, HashKey: "id"},
		{Name: t.TeamMembers, HashKey: "id"},
		{Name: t.SiteConfiguration, HashKey: "id"},
		{Name: tableOrDefault(t.Leads, defaultLeadsTableName), HashKey: "id"},
		{Name: tableOrDefault(t.Orders, defaultOrdersTableName), HashKey: "order_id"},
		{Name: t.CalendarEvents, HashKey: "id"},
		{
			Name:    tableOrDefault(t.AgentLogs, defaultAgentLogsTableName),
			HashKey: "id",
			Indexes: []IndexSpec{{Name: agentLogsTypeIndex, HashKey: "log_type", RangeKey: "created_at"}},
		},
		{Name: tableOrDefault(t.Integrations, defaultIntegrationsTableName), HashKey: "provider"},
	}
}

// EnsureTables creates every missing table with on-demand billing. Existing tables are left untouched.
func EnsureTables(ctx context.Context, ddb DynamoAPI, specs []TableSpec) ([]string, error) {
	var created []string
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			logrus.WithField("table", spec.Name).Debug("[migrate] table exists")
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return created, errors.Wrapf(err, "describe %s", spec.Name)
		}

		if _, err := ddb.CreateTable(ctx, createTableInput(spec)); err != nil {
			return created, errors.Wrapf(err, "create %s", spec.Name)
		}
		logrus.WithField("table", spec.Name).Info("[migrate] table created")
		created = append(created, spec.Name)
	}
	return created, nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := map[string]bool{spec.HashKey: true}
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(spec.Name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(spec.HashKey), KeyType: types.KeyTypeHash},
		},
	}
	for _, idx := range spec.Indexes {
		ks := []types.KeySchemaElement{{AttributeName: aws.String(idx.HashKey), KeyType: types.KeyTypeHash}}
		attrs[idx.HashKey] = true
		if idx.RangeKey != "" {
			ks = append(ks, types.KeySchemaElement{AttributeName: aws.String(idx.RangeKey), KeyType: types.KeyTypeRange})
			attrs[idx.RangeKey] = true
		}
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.Name),
			KeySchema:  ks,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	for name := range attrs {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}
	return in
}

// DynamoProbe checks that the orders table answers.
type DynamoProbe struct {
	ddb   DynamoAPI
	table string
}

var _ interfaces.IDatabaseProbe = (*DynamoProbe)(nil)

func NewDynamoProbe(ddb DynamoAPI, ordersTable string) *DynamoProbe {
	return &DynamoProbe{ddb: ddb, table: tableOrDefault(ordersTable, defaultOrdersTableName)}
}

func (p *DynamoProbe) Ping(ctx context.Context) error {
	_, err := p.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(p.table)})
	return errors.Wrap(err, "describe orders table")
}
