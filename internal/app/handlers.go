package app

import (
	"fmt"

	"github.com/bloomlms/bloom-backend/internal/graphql"
	"github.com/bloomlms/bloom-backend/internal/handlers"
	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
)

type Handlers struct {
	GraphQL *handlers.GraphQLHandler
}

func wireHandlers(log *logger.Logger, s Services) (Handlers, error) {
	schema, err := graphql.NewSchema(&graphql.Services{
		Users:     s.Users,
		Classes:   s.Classes,
		Lessons:   s.Lessons,
		Questions: s.Questions,
		Scores:    s.Scores,
	})
	if err != nil {
		return Handlers{}, fmt.Errorf("parse graphql schema: %w", err)
	}
	return Handlers{
		GraphQL: handlers.NewGraphQLHandler(log, schema),
	}, nil
}
