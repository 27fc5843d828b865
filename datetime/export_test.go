package datetime

// NewLocalZone builds a LocalZone over an arbitrary location.
var NewLocalZone = newLocalZone
