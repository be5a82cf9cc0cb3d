package utils

import "testing"

func TestSafeEnv(t *testing.T) {
	t.Setenv("ECR_TEST_KEY", "value")
	if got := SafeEnv("ECR_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("SafeEnv set = %q", got)
	}
	if got := SafeEnv("ECR_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("SafeEnv missing = %q", got)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("ECR_TEST_INT", "42")
	if got := EnvInt("ECR_TEST_INT", 7); got != 42 {
		t.Fatalf("EnvInt set = %d", got)
	}
	t.Setenv("ECR_TEST_INT", "not-a-number")
	if got := EnvInt("ECR_TEST_INT", 7); got != 7 {
		t.Fatalf("EnvInt invalid = %d", got)
	}
	if got := EnvInt("ECR_TEST_INT_MISSING", 7); got != 7 {
		t.Fatalf("EnvInt missing = %d", got)
	}
}
