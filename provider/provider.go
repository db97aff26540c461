package provider

import (
	"assignment-track/biz/application/service"
	"assignment-track/biz/infrastructure/cache"
	"assignment-track/biz/infrastructure/config"
	"assignment-track/biz/infrastructure/repository/assignment"
	"assignment-track/biz/infrastructure/repository/submission"
	"assignment-track/biz/infrastructure/repository/user"
	"assignment-track/biz/infrastructure/storage"
	"assignment-track/biz/infrastructure/util"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config            *config.Config
	AuthService       service.IAuthService
	AssignmentService service.IAssignmentService
	SubmissionService service.ISubmissionService
	FileService       service.IFileService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.AuthServiceSet,
	service.AssignmentServiceSet,
	service.SubmissionServiceSet,
	service.FileServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	util.NewClock,
	assignment.NewMongoMapper,
	wire.Bind(new(service.AssignmentStore), new(*assignment.MongoMapper)),
	submission.NewMongoMapper,
	wire.Bind(new(service.SubmissionStore), new(*submission.MongoMapper)),
	user.NewMongoMapper,
	wire.Bind(new(service.UserStore), new(*user.MongoMapper)),
	cache.NewAssignmentCacheMapper,
	wire.Bind(new(cache.IAssignmentCacheMapper), new(*cache.AssignmentCacheMapper)),
	storage.NewS3Client,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
