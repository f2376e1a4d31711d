package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatModel struct {
	reply   *schema.Message
	err     error
	input   []*schema.Message
	options *model.Options
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.input = input
	f.options = model.GetCommonOptions(&model.Options{}, opts...)
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := f.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

func TestChainGeneratorPassesPromptAndParams(t *testing.T) {
	fake := &fakeChatModel{reply: schema.AssistantMessage("  I hear you.  ", nil)}
	gen, err := NewChainGenerator(context.Background(), fake)
	require.NoError(t, err)

	got, err := gen.Generate(context.Background(), "assembled {prompt} text", DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, "I hear you.", got)

	require.Len(t, fake.input, 1)
	assert.Equal(t, schema.User, fake.input[0].Role)
	assert.Equal(t, "assembled {prompt} text", fake.input[0].Content)

	require.NotNil(t, fake.options)
	require.NotNil(t, fake.options.Temperature)
	assert.InDelta(t, 0.7, *fake.options.Temperature, 1e-6)
	require.NotNil(t, fake.options.MaxTokens)
	assert.Equal(t, 150, *fake.options.MaxTokens)
}

func TestChainGeneratorClassifiesFailures(t *testing.T) {
	ctx := context.Background()

	gen, err := NewChainGenerator(ctx, &fakeChatModel{err: errors.New("connection reset")})
	require.NoError(t, err)
	_, err = gen.Generate(ctx, "hi", DefaultParams())
	assert.ErrorIs(t, err, ErrNetworkFailure)

	filtered := schema.AssistantMessage("", nil)
	filtered.ResponseMeta = &schema.ResponseMeta{FinishReason: "content_filter"}
	gen, err = NewChainGenerator(ctx, &fakeChatModel{reply: filtered})
	require.NoError(t, err)
	_, err = gen.Generate(ctx, "hi", DefaultParams())
	assert.ErrorIs(t, err, ErrSafetyBlocked)

	gen, err = NewChainGenerator(ctx, &fakeChatModel{reply: schema.AssistantMessage("   ", nil)})
	require.NoError(t, err)
	_, err = gen.Generate(ctx, "hi", DefaultParams())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestNewChainGeneratorRequiresModel(t *testing.T) {
	_, err := NewChainGenerator(context.Background(), nil)
	assert.ErrorIs(t, err, ErrCredentialMissing)
}
