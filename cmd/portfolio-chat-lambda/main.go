// Command portfolio-chat-lambda serves the gateway behind API Gateway.
package main

import (
	"context"
	"fmt"
	"os"

	"portfolio-chat/internal/app"
	"portfolio-chat/pkg/config"
	"portfolio-chat/pkg/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	fiberadapter "github.com/awslabs/aws-lambda-go-api-proxy/fiber"
	"go.uber.org/zap"
)

var fiberLambda *fiberadapter.FiberLambda

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return fiberLambda.ProxyWithContext(ctx, req)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()

	// built once per cold start and reused across invocations
	a, err := app.Build(context.Background(), cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to build gateway", zap.Error(err))
	}
	defer a.Close()

	fiberLambda = fiberadapter.New(a.Router())
	lambda.Start(handler)
}
