package rabbitmq

type Channel = channel

func NewTransitionPublisherOnChannel(ch Channel, exchange string) *TransitionPublisher {
	return newTransitionPublisher(ch, exchange)
}
