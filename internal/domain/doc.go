// Package domain contains the core domain model for petspeak.
//
// The domain is presentation- and storage-agnostic: it does not depend on YAML parsing,
// the terminal, or the filesystem. Infra/adapters map into/from these types.
package domain
