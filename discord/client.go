package discord

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ViBiOh/httputils/v4/pkg/httpjson"
	"github.com/ViBiOh/httputils/v4/pkg/request"

	"github.com/rom8726/chatsweep"
)

const DefaultURL = "https://discord.com/api/v10"

var _ chatsweep.ChannelClient = Client{}

type Guild struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

// Client talks to the REST API with a fixed Authorization header.
type Client struct {
	req request.Request
}

// New creates a client. Bot tokens are sent with the "Bot " scheme, user
// tokens as is.
func New(baseURL, token string, bot bool) Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	authorization := token
	if bot {
		authorization = "Bot " + token
	}

	return Client{
		req: request.New().URL(baseURL).Header("Authorization", authorization),
	}
}

func (c Client) ListMessages(ctx context.Context, channelID, before string, limit int) ([]chatsweep.Message, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if before != "" {
		query.Set("before", before)
	}

	resp, err := c.req.Method(http.MethodGet).Path("/channels/%s/messages?%s", channelID, query.Encode()).Send(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list: %w", asAPIError(resp, err))
	}

	messages, err := httpjson.Read[[]chatsweep.Message](resp)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return messages, nil
}

// DeleteMessage succeeds only on 204 No Content.
func (c Client) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	resp, err := c.req.Method(http.MethodDelete).Path("/channels/%s/messages/%s", channelID, messageID).Send(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete: %w", asAPIError(resp, err))
	}

	if resp.StatusCode == http.StatusNoContent {
		if err := request.DiscardBody(resp.Body); err != nil {
			return fmt.Errorf("discard: %w", err)
		}

		return nil
	}

	body, err := request.ReadBodyResponse(resp)
	if err != nil {
		return &chatsweep.APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	return &chatsweep.APIError{StatusCode: resp.StatusCode, Body: string(body)}
}

func (c Client) CurrentUser(ctx context.Context) (chatsweep.User, error) {
	resp, err := c.req.Method(http.MethodGet).Path("/users/@me").Send(ctx, nil)
	if err != nil {
		return chatsweep.User{}, fmt.Errorf("get: %w", asAPIError(resp, err))
	}

	return httpjson.Read[chatsweep.User](resp)
}

func (c Client) Guilds(ctx context.Context) ([]Guild, error) {
	resp, err := c.req.Method(http.MethodGet).Path("/users/@me/guilds").Send(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list: %w", asAPIError(resp, err))
	}

	return httpjson.Read[[]Guild](resp)
}

func (c Client) Channels(ctx context.Context, guild Guild) ([]Channel, error) {
	resp, err := c.req.Method(http.MethodGet).Path("/guilds/%s/channels", guild.ID).Send(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list: %w", asAPIError(resp, err))
	}

	return httpjson.Read[[]Channel](resp)
}

// TextChannels lists the text channels of every guild the token can see.
func (c Client) TextChannels(ctx context.Context) ([]Channel, error) {
	guilds, err := c.Guilds(ctx)
	if err != nil {
		return nil, fmt.Errorf("guilds: %w", err)
	}

	var output []Channel

	for _, guild := range guilds {
		channels, err := c.Channels(ctx, guild)
		if err != nil {
			return nil, fmt.Errorf("channels of guild %s: %w", guild.ID, err)
		}

		for _, channel := range channels {
			if channel.Type == channelTypeGuildText {
				output = append(output, channel)
			}
		}
	}

	return output, nil
}

const channelTypeGuildText = 0

// asAPIError keeps the status code of a failed request so callers can log it.
func asAPIError(resp *http.Response, err error) error {
	if resp == nil {
		return err
	}

	return &chatsweep.APIError{StatusCode: resp.StatusCode, Err: err}
}
