package adapters

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"cloudsweep/internal/ports"
)

type awsSession struct {
	profile string
	cfg     aws.Config
}

func (s *awsSession) Profile() string {
	return s.profile
}

// AWSSessionAdapter opens SDK configs for named shared-config profiles. A
// profile carrying role_arn loads its source profile's credentials first and
// wraps them in an STS assume-role provider.
type AWSSessionAdapter struct {
	Profiles   ports.ProfileStorePort
	ConfigFile string
}

func NewAWSSessionAdapter(profiles ports.ProfileStorePort, configFile string) AWSSessionAdapter {
	return AWSSessionAdapter{Profiles: profiles, ConfigFile: configFile}
}

func (a AWSSessionAdapter) Open(ctx context.Context, profile string) (ports.Session, error) {
	prof, err := a.Profiles.Config(profile)
	if err != nil {
		return nil, err
	}

	loadProfile := profile
	if prof.RoleARN != "" && prof.SourceProfile != "" {
		loadProfile = prof.SourceProfile
	}
	opts := []func(*config.LoadOptions) error{
		config.WithSharedConfigProfile(loadProfile),
	}
	if a.ConfigFile != "" {
		opts = append(opts, config.WithSharedConfigFiles([]string{a.ConfigFile}))
	}
	if prof.Region != "" {
		opts = append(opts, config.WithRegion(prof.Region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	if prof.RoleARN != "" {
		log.Ctx(ctx).Debug().
			Str("profile", profile).
			Str("role_arn", prof.RoleARN).
			Msg("assuming role for profile")
		provider := stscreds.NewAssumeRoleProvider(sts.NewFromConfig(cfg), prof.RoleARN, func(o *stscreds.AssumeRoleOptions) {
			o.RoleSessionName = "cloudsweep-" + uuid.NewString()
		})
		cfg.Credentials = aws.NewCredentialsCache(provider)
	}
	return &awsSession{profile: profile, cfg: cfg}, nil
}
