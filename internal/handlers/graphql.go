package handlers

import (
	"github.com/gin-gonic/gin"
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
)

type GraphQLHandler struct {
	log     *logger.Logger
	handler gin.HandlerFunc
}

func NewGraphQLHandler(log *logger.Logger, schema *gql.Schema) *GraphQLHandler {
	handlerLog := log.With("handler", "GraphQLHandler")
	return &GraphQLHandler{
		log:     handlerLog,
		handler: gin.WrapH(&relay.Handler{Schema: schema}),
	}
}

func (gh *GraphQLHandler) Serve(c *gin.Context) {
	gh.handler(c)
}
