package main

import (
	"github.com/AllenDang/giu"
	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/backend"
	"vincit.fi/image-binder/common"
	"vincit.fi/image-binder/common/logger"
	ui "vincit.fi/image-binder/ui/giu"
)

const eventBusQueueSize = 1000

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))
	logger.Info.Printf("Starting in '%s'", params.RootPath())

	brokers := backend.InitializeEventBrokers(eventBusQueueSize)
	brokers.Broker.SetGuiRunner(func(fn func()) {
		fn()
		giu.Update()
	})

	stores := backend.InitializeStores(params)
	defer stores.Close()

	services := backend.InitializeServices(params, stores, brokers)
	defer services.Close()

	backend.ConnectServices(services, brokers)

	gui := ui.NewUi(params, brokers.Broker, services.Browser)

	broker := brokers.Broker
	broker.ConnectToGui(api.ImagesUpdated, gui.SetImages)
	broker.ConnectToGui(api.ThumbnailSizeChanged, gui.SetThumbnailSize)
	broker.ConnectToGui(api.ThumbnailDecoded, gui.ThumbnailReady)
	broker.ConnectToGui(api.ThumbnailDecodeFailed, gui.ThumbnailReady)
	broker.ConnectToGui(api.ProcessStatusUpdated, gui.UpdateProgress)
	broker.ConnectToGui(api.ShowError, gui.ShowError)

	gui.Run()
}
