package redis

import "testing"

func TestGetClientSingleton(t *testing.T) {
	client1 := GetClient()
	if client1 == nil {
		t.Fatal("expected Redis client to be created")
	}
	client2 := GetClient()
	if client1 != client2 {
		t.Error("expected same client instance (singleton pattern)")
	}
}

func TestResetClientForTest(t *testing.T) {
	client1 := GetClient()
	ResetClientForTest()
	client2 := GetClient()
	if client1 == client2 {
		t.Error("expected a new client instance after reset")
	}
}

func TestGetContext(t *testing.T) {
	ctx := GetContext()
	if ctx == nil {
		t.Fatal("expected context to be created")
	}
	select {
	case <-ctx.Done():
		t.Error("expected context to not be cancelled")
	default:
	}
}
