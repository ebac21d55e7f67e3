package sms

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SmsMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_messages_total",
			Help: "Total number of sms pipeline transitions",
		},
		[]string{"intent", "outcome"},
	)

	SmsProviderReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_provider_reports_total",
			Help: "Total number of provider delivery reports",
		},
		[]string{"status", "result"},
	)
)
