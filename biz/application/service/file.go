package service

import (
	"context"
	"io"
	"mime/multipart"

	"assignment-track/biz/application/dto/basic"
	"assignment-track/biz/application/dto/track"
	"assignment-track/biz/infrastructure/consts"
	"assignment-track/biz/infrastructure/storage"
	"assignment-track/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IFileService interface {
	UploadFiles(ctx context.Context, meta *basic.UserMeta, files []*multipart.FileHeader) (*track.UploadFilesResp, error)
}

// FileService 上传文件并返回不透明引用，提交记录只保存引用
type FileService struct {
	Storage *storage.S3Client
}

var FileServiceSet = wire.NewSet(
	wire.Struct(new(FileService), "*"),
	wire.Bind(new(IFileService), new(*FileService)),
)

func (s *FileService) UploadFiles(ctx context.Context, meta *basic.UserMeta, files []*multipart.FileHeader) (*track.UploadFilesResp, error) {
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	keys := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, consts.ErrUpload
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, consts.ErrUpload
		}

		key, err := s.Storage.Upload(ctx, meta.GetUserId(), fh.Filename, data)
		if err != nil {
			log.CtxError(ctx, "上传文件失败: %v", err)
			return nil, consts.ErrUpload
		}
		keys = append(keys, key)
	}

	return &track.UploadFilesResp{
		Files: keys,
	}, nil
}
