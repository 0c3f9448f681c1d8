package discord

import (
	"context"

	"github.com/tkarpov/warroom/internal/paginate"
	"github.com/tkarpov/warroom/internal/render"
)

// MessageRef identifies a hosting message at the platform boundary.
type MessageRef struct {
	ChannelId string
	MessageId string
}

// MessageView is everything the platform needs to draw a message: one or more
// rendered pages plus, optionally, the state of the navigation controls.
type MessageView struct {
	Pages []render.Page

	// Nav nil means the message carries no controls.
	Nav *paginate.NavState
}

// Messenger posts and edits channel messages. The platform is an external
// collaborator; every call is best-effort and failures must stay non-fatal.
type Messenger interface {
	Send(ctx context.Context, channelId string, view MessageView) (MessageRef, error)
	Edit(ctx context.Context, ref MessageRef, view MessageView) error
}
