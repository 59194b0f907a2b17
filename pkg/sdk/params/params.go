// Package params defines the reserved payload parameter names
// recognized by the Signalbeam platform. Signals using these keys are
// picked up by the built-in dashboards without custom queries.
//
// Example:
//
//	client.Send("appOpened",
//	    sdk.WithClientUser("user"),
//	    sdk.WithPayload(map[string]string{
//	        params.DevicePlatform:      "linux",
//	        params.DeviceSystemVersion: "6.8",
//	    }),
//	)
package params

// Accessibility settings.
const (
	AccessibilityFontWeightAdjustment        = "Signalbeam.Accessibility.fontWeightAdjustment"
	AccessibilityFontScale                   = "Signalbeam.Accessibility.fontScale"
	AccessibilityIsBoldTextEnabled           = "Signalbeam.Accessibility.isBoldTextEnabled"
	AccessibilityIsDarkerSystemColorsEnabled = "Signalbeam.Accessibility.isDarkerSystemColorsEnabled"
	AccessibilityIsInvertColorsEnabled       = "Signalbeam.Accessibility.isInvertColorsEnabled"
	AccessibilityIsReduceMotionEnabled       = "Signalbeam.Accessibility.isReduceMotionEnabled"
	AccessibilityIsReduceTransparencyEnabled = "Signalbeam.Accessibility.isReduceTransparencyEnabled"
	AccessibilityDifferentiateWithoutColor   = "Signalbeam.Accessibility.shouldDifferentiateWithoutColor"
)

// User acquisition data.
const (
	AcquisitionFirstSessionDate = "Signalbeam.Acquisition.firstSessionDate"
	AcquisitionChannel          = "Signalbeam.Acquisition.channel"
	AcquisitionLeadID           = "Signalbeam.Acquisition.leadID"
)

// Device information.
const (
	DeviceArchitecture            = "Signalbeam.Device.architecture"
	DeviceModelName               = "Signalbeam.Device.modelName"
	DeviceOperatingSystem         = "Signalbeam.Device.operatingSystem"
	DevicePlatform                = "Signalbeam.Device.platform"
	DeviceSystemMajorMinorVersion = "Signalbeam.Device.systemMajorMinorVersion"
	DeviceSystemMajorVersion      = "Signalbeam.Device.systemMajorVersion"
	DeviceSystemVersion           = "Signalbeam.Device.systemVersion"
	DeviceBrand                   = "Signalbeam.Device.brand"
	DeviceTimeZone                = "Signalbeam.Device.timeZone"
	DeviceOrientation             = "Signalbeam.Device.orientation"
	DeviceScreenDensity           = "Signalbeam.Device.screenDensity"
	DeviceScreenHeight            = "Signalbeam.Device.screenResolutionHeight"
	DeviceScreenWidth             = "Signalbeam.Device.screenResolutionWidth"
)

// Navigation paths and routes.
const (
	NavigationSchemaVersion   = "Signalbeam.Navigation.schemaVersion"
	NavigationIdentifier      = "Signalbeam.Navigation.identifier"
	NavigationSourcePath      = "Signalbeam.Navigation.sourcePath"
	NavigationDestinationPath = "Signalbeam.Navigation.destinationPath"
)

// Purchase details.
const (
	PurchaseType         = "Signalbeam.Purchase.type"
	PurchaseCountryCode  = "Signalbeam.Purchase.countryCode"
	PurchaseCurrencyCode = "Signalbeam.Purchase.currencyCode"
	PurchaseProductID    = "Signalbeam.Purchase.productID"
	PurchaseOfferID      = "Signalbeam.Purchase.offerID"
	PurchasePriceMicros  = "Signalbeam.Purchase.priceMicros"
)

// User retention metrics.
const (
	RetentionAverageSessionSeconds     = "Signalbeam.Retention.averageSessionSeconds"
	RetentionDistinctDaysUsed          = "Signalbeam.Retention.distinctDaysUsed"
	RetentionTotalSessionsCount        = "Signalbeam.Retention.totalSessionsCount"
	RetentionPreviousSessionSeconds    = "Signalbeam.Retention.previousSessionSeconds"
	RetentionDistinctDaysUsedLastMonth = "Signalbeam.Retention.distinctDaysUsedLastMonth"
)

// Calendar breakdown of the signal timestamp.
const (
	CalendarDayOfMonth    = "Signalbeam.Calendar.dayOfMonth"
	CalendarDayOfWeek     = "Signalbeam.Calendar.dayOfWeek"
	CalendarDayOfYear     = "Signalbeam.Calendar.dayOfYear"
	CalendarWeekOfYear    = "Signalbeam.Calendar.weekOfYear"
	CalendarIsWeekend     = "Signalbeam.Calendar.isWeekend"
	CalendarMonthOfYear   = "Signalbeam.Calendar.monthOfYear"
	CalendarQuarterOfYear = "Signalbeam.Calendar.quarterOfYear"
	CalendarHourOfDay     = "Signalbeam.Calendar.hourOfDay"
)

// Runtime environment.
const (
	RunContextLocale            = "Signalbeam.RunContext.locale"
	RunContextTargetEnvironment = "Signalbeam.RunContext.targetEnvironment"
	RunContextIsSideLoaded      = "Signalbeam.RunContext.isSideLoaded"
	RunContextSourceMarketplace = "Signalbeam.RunContext.sourceMarketplace"
)

// User preferences.
const (
	UserPreferenceLayoutDirection = "Signalbeam.UserPreference.layoutDirection"
	UserPreferenceRegion          = "Signalbeam.UserPreference.region"
	UserPreferenceLanguage        = "Signalbeam.UserPreference.language"
	UserPreferenceColorScheme     = "Signalbeam.UserPreference.colorScheme"
)
