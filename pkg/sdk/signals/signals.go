// Package signals defines the reserved signal type names recognized by
// the Signalbeam platform. Using these constants keeps your signals
// aligned with the built-in analytics and dashboards.
package signals

// Session lifecycle signals.
const (
	// SessionStarted is sent when a new session starts.
	SessionStarted = "Signalbeam.Session.started"
)

// Navigation signals.
const (
	// NavigationPathChanged is sent when the navigation path changes.
	NavigationPathChanged = "Signalbeam.Navigation.pathChanged"
)

// Purchase and monetization signals.
const (
	// PurchaseCompleted is sent when a purchase is completed.
	PurchaseCompleted = "Signalbeam.Purchase.completed"
	// PurchaseFreeTrialStarted is sent when a free trial starts.
	PurchaseFreeTrialStarted = "Signalbeam.Purchase.freeTrialStarted"
	// PurchaseConvertedFromTrial is sent when a user converts from
	// trial to paid.
	PurchaseConvertedFromTrial = "Signalbeam.Purchase.convertedFromTrial"
)

// User acquisition and onboarding signals.
const (
	// AcquisitionNewInstallDetected is sent when a new install is
	// detected.
	AcquisitionNewInstallDetected = "Signalbeam.Acquisition.newInstallDetected"
	// AcquisitionLeadStarted is sent when a lead is started.
	AcquisitionLeadStarted = "Signalbeam.Acquisition.leadStarted"
	// AcquisitionUserAcquired is sent when a user is acquired.
	AcquisitionUserAcquired = "Signalbeam.Acquisition.userAcquired"
	// AcquisitionLeadConverted is sent when a lead converts.
	AcquisitionLeadConverted = "Signalbeam.Acquisition.leadConverted"
)

// General signal metadata parameters.
const (
	// DurationInSeconds carries a signal duration in seconds.
	DurationInSeconds = "Signalbeam.Signal.durationInSeconds"
)
