package notifier

var NewKafkaNotifierWithWriter = newKafkaNotifier
