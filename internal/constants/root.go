package constants

import "time"

const (
	AppName            = "lifeboost"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/lifeboost/lifeboost.db"
	DefaultSettingsDir = "~/.config/lifeboost"
	SettingsFileName   = "config.yaml"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage keys
	KeyHydrationReminder = "hydrationReminder"
	KeyBedtimeReminder   = "bedtimeReminder"
	KeyMeditationTimer   = "meditationTimer"
	KeyWorkoutTimer      = "workoutTimer"
	KeyWaterHistory      = "waterHistory"
	KeyUserStats         = "userStats"
	KeyWorkoutExercises  = "workoutExercises"
	KeyUserName          = "userName"

	// Countdown defaults
	DefaultHydrationIntervalMin = 30
	DefaultBedtime              = "22:00"
	DefaultMeditationSec        = 120
	DefaultWorkoutMin           = 25
	BedtimePeriodSec            = 24 * 60 * 60
	DefaultMaxSuspension        = 30 * 24 * time.Hour
	TickInterval                = time.Second

	// MaxBackups is how many database snapshots are kept
	MaxBackups = 7

	// Hydration defaults
	DefaultWaterGoal = 2.0
	MinWaterGoal     = 0.1
	MaxWaterGoal     = 10.0
	IntakeStep       = 0.25

	// Notify constants
	NotifierLockfileName       = "lifeboost-notifier.lock"
	NotificationDurationMs     = 10000
	TrayAppIdentifier          = "com.julianstephens.lifeboost"
	TrayExecutablePrefix       = "lifeboost-tray"
	DefaultNotificationsPerMin = 6
	NotificationBurst          = 3

	// Validation limits
	MaxNameLength = 64

	// Environment overrides
	EnvDBPath       = "LIFEBOOST_DB"
	EnvDBConnection = "LIFEBOOST_DB_CONNECTION"
	EnvTimezone     = "LIFEBOOST_TIMEZONE"
	EnvDebug        = "LIFEBOOST_DEBUG"
	EnvSettingsFile = "LIFEBOOST_SETTINGS"
)

// PersistedKeys lists every key the application writes. Logout clears all of them.
var PersistedKeys = []string{
	KeyHydrationReminder,
	KeyBedtimeReminder,
	KeyMeditationTimer,
	KeyWorkoutTimer,
	KeyWaterHistory,
	KeyUserStats,
	KeyWorkoutExercises,
	KeyUserName,
}
