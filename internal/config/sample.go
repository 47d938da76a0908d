package config

// SampleConfig is the commented starter file written by `gitcreds init`.
const SampleConfig = `# gitcreds accounts configuration
#
# Each account names a service URL and the authentication realm its
# credentials belong to. Values may reference environment variables with
# ${VAR}; variables from .env/.env.local are loaded automatically.
accounts:
  - realm: Artifactory Realm
    url: https://repo.example.com/artifactory
    username: ${PUBLISH_USER}

logging:
  level: info
  format: text
`
