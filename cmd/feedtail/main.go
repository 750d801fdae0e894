// Command feedtail subscribes to the engine change feed and logs every
// event. Operators use it to watch assignments and position updates live.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ataxihosur/dispatch/internal/pkg/config"
	"github.com/ataxihosur/dispatch/internal/pkg/constants"
	"github.com/ataxihosur/dispatch/internal/pkg/events"
	"github.com/ataxihosur/dispatch/internal/pkg/logger"
)

func main() {
	var (
		topicsFlag  = flag.String("topics", "", "comma-separated topics to tail (default: all engine topics)")
		channelFlag = flag.String("channel", "feedtail", "NSQ channel name")
	)
	flag.Parse()

	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.SetGlobalLogger(appLogger)

	topics := []string{
		constants.TopicTripAssigned,
		constants.TopicTripStatusChanged,
		constants.TopicLocationUpdated,
		constants.TopicNotificationCreated,
	}
	if *topicsFlag != "" {
		topics = strings.Split(*topicsFlag, ",")
	}

	consumers := make([]*events.Consumer, 0, len(topics))
	for _, topic := range topics {
		consumer, err := events.NewConsumer(topic, *channelFlag, configs.NSQ.Address, func(message []byte) error {
			var event map[string]interface{}
			if err := events.UnmarshalMessage(message, &event); err != nil {
				return err
			}
			logger.Info("feed event", logger.Fields{"topic": topic, "event": event})
			return nil
		})
		if err != nil {
			logger.Error("Failed to subscribe", logger.Fields{"topic": topic, "error": err.Error()})
			os.Exit(1)
		}
		if len(configs.NSQ.LookupAddresses) > 0 {
			if err := consumer.ConnectToLookupd(configs.NSQ.LookupAddresses); err != nil {
				logger.Warn("Lookupd connection failed, staying on direct nsqd", logger.Fields{"error": err.Error()})
			}
		}
		consumers = append(consumers, consumer)
	}

	logger.Info("Tailing change feed", logger.Fields{"topics": topics})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	for _, consumer := range consumers {
		consumer.Stop()
	}
}
