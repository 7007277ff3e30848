package config

import (
	"os"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Version      string
	Region       string
	Stage        string
}

// DetectServerless reads the variables the Lambda runtime sets for every function
func DetectServerless() ServerlessConfig {
	return ServerlessConfig{
		IsLambda:     isRunningInLambda(),
		FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		Version:      os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
		Region:       os.Getenv("AWS_REGION"),
		Stage:        GetEnv("STAGE", "dev"),
	}
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// DeploymentMode returns the current deployment mode
func (s ServerlessConfig) DeploymentMode() string {
	if s.IsLambda {
		return "serverless"
	}
	return "server"
}
