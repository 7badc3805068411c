package coach

import "context"

type Api interface {
	Add(ctx context.Context, message *Message) (*Message, error)
	Get(ctx context.Context, messageId int) (*Message, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]Message, error)
}
