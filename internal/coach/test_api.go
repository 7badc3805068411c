package coach

import (
	"context"
)

type TestApi struct {
	messages map[int]*Message
	nextId   int
}

func NewTestApi() *TestApi {
	return &TestApi{
		messages: make(map[int]*Message),
		nextId:   1,
	}
}

func (api *TestApi) Add(_ context.Context, message *Message) (*Message, error) {
	message.Id = api.nextId
	api.nextId++
	api.messages[message.Id] = message
	return message, nil
}

func (api *TestApi) Get(_ context.Context, id int) (*Message, error) {
	message, ok := api.messages[id]
	if !ok {
		return nil, ErrMessageNotFound
	}
	return message, nil
}

func (api *TestApi) Delete(_ context.Context, id int) error {
	if _, ok := api.messages[id]; !ok {
		return ErrMessageNotFound
	}
	delete(api.messages, id)
	return nil
}

func (api *TestApi) List(context.Context) ([]Message, error) {
	var messages []Message
	for _, m := range api.messages {
		messages = append(messages, *m)
	}
	return messages, nil
}
