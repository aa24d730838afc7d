package event

import (
	"fmt"
	"reflect"
	"sync"

	messagebus "github.com/vardius/message-bus"
	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/common/logger"
)

// GuiRunner executes a callback in the context of the GUI. The default
// runner calls the callback directly.
type GuiRunner func(fn func())

type Broker struct {
	bus       messagebus.MessageBus
	guiRunner GuiRunner
	mux       sync.RWMutex

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
		guiRunner: func(fn func()) {
			fn()
		},
	}
}

func (s *Broker) SetGuiRunner(runner GuiRunner) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.guiRunner = runner
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panicf("Could not subscribe to '%s': %s", topic, err)
	}
}

func (s *Broker) ConnectToGui(topic api.Topic, callback interface{}) {
	cb := func(params ...interface{}) {
		sendFn := func() {
			args := make([]reflect.Value, 0, len(params))
			for _, param := range params {
				args = append(args, reflect.ValueOf(param))
			}
			if logger.IsLogLevel(logger.TRACE) {
				logger.Trace.Printf("Calling topic '%s' with: %s", topic, params)
			}
			reflect.ValueOf(callback).Call(args)
		}

		s.mux.RLock()
		runner := s.guiRunner
		s.mux.RUnlock()
		runner(sendFn)
	}
	err := s.bus.Subscribe(string(topic), cb)
	if err != nil {
		logger.Error.Panicf("Could not subscribe to '%s': %s", topic, err)
	}
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}

func (s *Broker) Close(topic api.Topic) {
	s.bus.Close(string(topic))
}
