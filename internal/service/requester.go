package service

import "context"

// Requester is the part of apiclient.Client the services depend on.
type Requester interface {
	Do(ctx context.Context, method, path string, body, out any) error
}
