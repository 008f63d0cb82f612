package s3

import (
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Default options values.
const (
	DefaultSecure = true
)

// DefaultCredentials builds the default credential chain: environment
// variables, then the shared aws credentials file, then IAM role.
func DefaultCredentials() *credentials.Credentials {
	return credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvAWS{},
		&credentials.FileAWSCredentials{},
		&credentials.IAM{},
	})
}

// Options defines a read-only view of options used by a Client.
type Options interface {
	// GetCredentials returns the credentials used by the client.
	GetCredentials() *credentials.Credentials

	// GetSecure returns whether the endpoint is accessed over https.
	GetSecure() bool

	// GetRegion returns the region, or empty for auto-discovery.
	GetRegion() string
}

// OptionsBuilder defines a read-write view of options used by a Client.
type OptionsBuilder interface {
	Options

	// Build returns the read-only version of options.
	Build() Options

	// SetCredentials sets the credentials used by the client.
	SetCredentials(creds *credentials.Credentials) OptionsBuilder

	// SetStaticCredentials sets a fixed access/secret key pair.
	SetStaticCredentials(accessKey, secretKey string) OptionsBuilder

	// SetSecure sets whether the endpoint is accessed over https.
	SetSecure(secure bool) OptionsBuilder

	// SetRegion sets the region.
	SetRegion(region string) OptionsBuilder
}

type options struct {
	creds  *credentials.Credentials
	secure bool
	region string
}

// NewDefaultOptions creates an OptionsBuilder with default options.
func NewDefaultOptions() OptionsBuilder {
	return &options{
		creds:  DefaultCredentials(),
		secure: DefaultSecure,
	}
}

func (opts *options) GetCredentials() *credentials.Credentials {
	return opts.creds
}

func (opts *options) GetSecure() bool {
	return opts.secure
}

func (opts *options) GetRegion() string {
	return opts.region
}

func (opts *options) Build() Options {
	return opts
}

func (opts *options) SetCredentials(creds *credentials.Credentials) OptionsBuilder {
	opts.creds = creds
	return opts
}

func (opts *options) SetStaticCredentials(accessKey, secretKey string) OptionsBuilder {
	opts.creds = credentials.NewStaticV4(accessKey, secretKey, "")
	return opts
}

func (opts *options) SetSecure(secure bool) OptionsBuilder {
	opts.secure = secure
	return opts
}

func (opts *options) SetRegion(region string) OptionsBuilder {
	opts.region = region
	return opts
}
