package storage

import (
	"bytes"
	"context"
	"fmt"

	"assignment-track/biz/infrastructure/config"
	"assignment-track/biz/infrastructure/util/log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// S3Client 文件存储客户端，上传后返回稳定的对象引用
// 引擎只保存引用，不接触文件内容
type S3Client struct {
	svc    *s3.S3
	bucket string
	state  string
}

func NewS3Client(config *config.Config) (*S3Client, error) {
	awsConfig := aws.NewConfig().
		WithRegion(config.S3.Region).
		WithCredentials(credentials.NewStaticCredentials(config.S3.AccessKey, config.S3.SecretKey, ""))
	if config.S3.Endpoint != "" {
		awsConfig = awsConfig.WithEndpoint(config.S3.Endpoint).WithS3ForcePathStyle(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("create s3 session failed: %w", err)
	}

	log.Info("NewS3Client bucket: %s", config.S3.Bucket)
	return &S3Client{
		svc:    s3.New(sess),
		bucket: config.S3.Bucket,
		state:  config.State,
	}, nil
}

// Upload 上传文件内容，返回对象key作为不透明引用
func (c *S3Client) Upload(ctx context.Context, userID, filename string, data []byte) (string, error) {
	key := fmt.Sprintf("submissions_%s/%s/%s_%s", c.state, userID, uuid.New().String(), filename)

	_, err := c.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("put object failed: %w", err)
	}

	return key, nil
}
