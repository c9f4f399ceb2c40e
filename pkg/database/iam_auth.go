package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	rdsutils "github.com/aws/aws-sdk-go-v2/feature/rds/auth"
)

// IAMAuthConfig identifies the RDS instance and database user to sign tokens for.
type IAMAuthConfig struct {
	Region  string
	Profile string // Primarily for dev purposes
	// Endpoint is host:port of the RDS instance.
	Endpoint string
	User     string
}

// IAMTokenProvider builds short-lived RDS IAM auth tokens.
type IAMTokenProvider struct {
	cfg         IAMAuthConfig
	credentials aws.CredentialsProvider
}

// NewIAMTokenProvider loads the AWS credential chain for cfg.
func NewIAMTokenProvider(ctx context.Context, cfg IAMAuthConfig) (*IAMTokenProvider, error) {
	if cfg.Endpoint == "" || cfg.User == "" || cfg.Region == "" {
		return nil, fmt.Errorf("IAM database auth requires endpoint, user and region")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for RDS IAM auth: %w", err)
	}

	return &IAMTokenProvider{cfg: cfg, credentials: awsCfg.Credentials}, nil
}

// Token signs a new auth token. Signing is local; no AWS API call is made.
func (p *IAMTokenProvider) Token(ctx context.Context) (string, error) {
	token, err := rdsutils.BuildAuthToken(ctx, p.cfg.Endpoint, p.cfg.Region, p.cfg.User, p.credentials)
	if err != nil {
		return "", fmt.Errorf("failed to create RDS authentication token: %w", err)
	}
	return token, nil
}
