package main

import (
	"fmt"
	"net/http"
	"time"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check application health (dev, staging, production)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	env := envProduction
	if len(args) > 0 {
		env = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", env))

	if err := checkHealth(env); err != nil {
		PrintError("Health check failed: %v", err)
		return err
	}

	// Also check response time
	start := time.Now()
	if err := checkHealth(env); err != nil {
		return err
	}
	duration := time.Since(start)

	if duration > 1*time.Second {
		PrintWarning("Health check warning: slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}

	return nil
}

// checkHealth probes the readiness endpoint of the target environment.
// Base URLs come from environment variables so deployments stay out of code.
func checkHealth(env string) error {
	var baseURL string
	switch env {
	case envStaging:
		baseURL = getEnv("STAGING_URL", "http://localhost:8081")
	case envProduction:
		baseURL = getEnv("PRODUCTION_URL", "http://localhost:8080")
	default:
		baseURL = getEnv("DEV_URL", "http://localhost:8080")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(baseURL + "/readyz")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
