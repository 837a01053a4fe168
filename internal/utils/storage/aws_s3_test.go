package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3API struct {
	objects map[string][]byte
	getErr  error
	putErr  error
	lastPut *s3.PutObjectInput
}

func (f *fakeS3API) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func (f *fakeS3API) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[aws.ToString(in.Key)] = body
	f.lastPut = in
	return &s3.PutObjectOutput{}, nil
}

func TestAwsS3_PutThenGet(t *testing.T) {
	api := &fakeS3API{}
	client := newAwsS3(api, "pantry")
	ctx := context.Background()

	require.NoError(t, client.PutObject(ctx, "ingredients.json", []byte(`[]`), "application/json"))
	assert.Equal(t, "pantry", aws.ToString(api.lastPut.Bucket))
	assert.Equal(t, "application/json", aws.ToString(api.lastPut.ContentType))
	assert.Equal(t, int64(2), aws.ToInt64(api.lastPut.ContentLength))

	body, err := client.GetObject(ctx, "ingredients.json")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(body))
}

func TestAwsS3_GetMissingKey(t *testing.T) {
	client := newAwsS3(&fakeS3API{}, "pantry")

	_, err := client.GetObject(context.Background(), "absent.json")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestAwsS3_GetPassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("connection reset")
	client := newAwsS3(&fakeS3API{getErr: boom}, "pantry")

	_, err := client.GetObject(context.Background(), "ingredients.json")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrObjectNotFound)
}
