package backend

import (
	"context"

	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/backend/action"
	"vincit.fi/image-binder/backend/browser"
	"vincit.fi/image-binder/backend/database"
	"vincit.fi/image-binder/backend/host"
	"vincit.fi/image-binder/backend/imageloader"
	"vincit.fi/image-binder/backend/library"
	"vincit.fi/image-binder/backend/preferences"
	"vincit.fi/image-binder/backend/thumbnail"
	"vincit.fi/image-binder/common"
	"vincit.fi/image-binder/common/event"
	"vincit.fi/image-binder/common/logger"
)

type Stores struct {
	PreferenceStore *database.PreferenceStore
	db              *database.Database
}

func (s *Stores) Close() {
	s.db.Close()
}

type Services struct {
	ImageLibrary      api.ImageLibrary
	ImageLoader       api.ImageLoader
	ThumbnailCache    *thumbnail.Cache
	PreferenceService *preferences.Service
	Browser           *browser.Session
	ActionDispatcher  *action.Dispatcher
	HostWorkspace     api.Workspace
	dispatchCtx       context.Context
	cancelDispatchCtx context.CancelFunc
}

func (s *Services) Close() {
	s.cancelDispatchCtx()
	s.ThumbnailCache.Close()
}

type Brokers struct {
	Broker *event.Broker
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

// InitializeStores opens the preference database. If the file can't be
// opened the preferences live in memory for this run only.
func InitializeStores(params *common.Params) *Stores {
	logger.Debug.Printf("Initialize databases...")
	db := database.NewDatabase()
	if err := db.Open(params.PreferencesPath()); err != nil {
		logger.Warn.Printf("Could not open preferences '%s', using in-memory preferences: %s", params.PreferencesPath(), err)
		db.Close()
		if db, err = database.NewInMemoryDatabase(); err != nil {
			logger.Error.Fatal("Error opening database: ", err)
		}
	}
	if _, err := db.Migrate(); err != nil {
		logger.Error.Fatal("Error migrating database: ", err)
	}

	stores := &Stores{
		PreferenceStore: database.NewPreferenceStore(db),
		db:              db,
	}
	logger.Debug.Printf("Stores and databases initialized")
	return stores
}

func InitializeServices(params *common.Params, stores *Stores, brokers *Brokers) *Services {
	logger.Debug.Printf("Initialize services...")
	imageLoader := imageloader.NewImageLoader()
	imageLibrary := library.NewLibrary()
	thumbnailCache := thumbnail.NewCache(imageLoader, brokers.Broker, params.DecodeWorkers())
	preferenceService := preferences.NewService(stores.PreferenceStore)
	session := browser.NewSession(brokers.Broker, imageLibrary, thumbnailCache, preferenceService)
	workspace := host.NewWorkspace()

	ctx, cancel := context.WithCancel(context.Background())
	services := &Services{
		ImageLibrary:      imageLibrary,
		ImageLoader:       imageLoader,
		ThumbnailCache:    thumbnailCache,
		PreferenceService: preferenceService,
		Browser:           session,
		ActionDispatcher:  action.NewDispatcher(session, workspace),
		HostWorkspace:     workspace,
		dispatchCtx:       ctx,
		cancelDispatchCtx: cancel,
	}
	logger.Debug.Printf("Services initialized")
	return services
}

// ConnectServices subscribes the backend services to the topics sent by
// the GUI.
func ConnectServices(services *Services, brokers *Brokers) {
	broker := brokers.Broker
	session := services.Browser

	broker.Subscribe(api.DirectoryChanged, session.ChangeDirectory)
	broker.Subscribe(api.ThumbnailSizeRequest, session.SetThumbnailSize)
	broker.Subscribe(api.ImageSelected, session.Select)
	broker.Subscribe(api.ActionRequested, performAction(services.dispatchCtx, services.ActionDispatcher, broker))
}

// performAction shows every failed action to the user.
func performAction(ctx context.Context, dispatcher api.ActionDispatcher, sender api.Sender) func(*api.PerformActionCommand) {
	return func(command *api.PerformActionCommand) {
		if err := dispatcher.Perform(ctx, command.Action, command.Images, command.ImageId); err != nil {
			sender.SendError("Action failed", err)
		}
	}
}
