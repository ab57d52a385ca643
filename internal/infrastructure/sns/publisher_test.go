package sns

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSNS struct{ mock.Mock }

func (m *mockSNS) Publish(ctx context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	args := m.Called(ctx, in)
	if out, _ := args.Get(0).(*sns.PublishOutput); out != nil {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestPublish_SendsJSONWithEventAttribute(t *testing.T) {
	client := &mockSNS{}
	p := &publisher{client: client, topicARN: "arn:aws:sns:us-east-1:000000000000:user-events"}

	client.On("Publish", mock.Anything, mock.MatchedBy(func(in *sns.PublishInput) bool {
		attr, ok := in.MessageAttributes["event_type"]
		return aws.ToString(in.TopicArn) == p.topicARN &&
			aws.ToString(in.Message) == `{"user_id":42}` &&
			ok && aws.ToString(attr.StringValue) == EventUserRegistered
	})).Return(&sns.PublishOutput{MessageId: aws.String("m-1")}, nil)

	err := p.Publish(context.Background(), EventUserRegistered, map[string]int64{"user_id": 42})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestPublish_WrapsClientError(t *testing.T) {
	client := &mockSNS{}
	boom := errors.New("throttled")
	client.On("Publish", mock.Anything, mock.Anything).Return(nil, boom)

	err := (&publisher{client: client}).Publish(context.Background(), EventUserRegistered, struct{}{})

	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, EventUserRegistered)
}

func TestPublish_UnmarshalablePayload(t *testing.T) {
	client := &mockSNS{}
	err := (&publisher{client: client}).Publish(context.Background(), EventUserRegistered, make(chan int))

	assert.Error(t, err)
	client.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
