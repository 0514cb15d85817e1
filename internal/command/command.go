package command

import "context"

// Client serves operator commands until ctx is done.
type Client interface {
	HandleCommand(ctx context.Context) error
}
