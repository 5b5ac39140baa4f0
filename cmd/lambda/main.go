package main

import (
	"context"
	"perftracker/cmd"
	"perftracker/internal/util"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"
)

type lambdaHandler struct {
	ginLambda *ginadapter.GinLambda
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	zap.S().Infow("lambda request", "method", req.HTTPMethod, "path", req.Path)
	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	log := zap.S()
	cfg, err := util.LoadConfig("")
	if err != nil {
		log.Fatal(err)
	}
	deps, err := cmd.InitializeDependencies(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	handler := lambdaHandler{
		ginLambda: ginadapter.New(deps.ApiHandler.InitializeRouterEngine()),
	}
	lambda.Start(handler.Handler)
}
