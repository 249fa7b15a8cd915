package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// PubSub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// FCM gateway providers
const (
	FCMProviderHTTP     = "http"
	FCMProviderFirebase = "firebase"
)

// Change-event source tables routed by the notifier
const (
	TableStories       = "stories"
	TablePosts         = "posts"
	TableReactions     = "reactions"
	TableNotifications = "notifications"
)

// EventSourceDirect labels direct invocations, which carry no table
const EventSourceDirect = "direct"

// EventTypeInsert is the only change-event operation the notifier acts on
const EventTypeInsert = "INSERT"
