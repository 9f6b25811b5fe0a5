package pb

import (
	context "context"

	"google.golang.org/grpc"
)

type Client struct {
	api MixServiceClient
}

func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{
		api: NewMixServiceClient(conn),
	}
}
func (c *Client) Pull(ctx context.Context, argument []byte) ([]byte, error) {
	out, err := c.api.Pull(ctx, &PullInput{
		Argument: argument,
	})
	if err != nil {
		return nil, err
	}
	return out.Diff, nil
}
func (c *Client) GetPullArgument(ctx context.Context) ([]byte, error) {
	out, err := c.api.GetPullArgument(ctx, &GetPullArgumentInput{})
	if err != nil {
		return nil, err
	}
	return out.Argument, nil
}
func (c *Client) Push(ctx context.Context, diff []byte) error {
	_, err := c.api.Push(ctx, &PushInput{
		Diff: diff,
	})
	return err
}
func (c *Client) DoMix(ctx context.Context) (bool, error) {
	out, err := c.api.DoMix(ctx, &DoMixInput{})
	if err != nil {
		return false, err
	}
	return out.Ok, nil
}
