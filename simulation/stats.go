package simulation

// AircraftStats accumulates an aircraft's KPIs over its lifetime. Every
// field is monotonically non-decreasing across any sequence of Update
// calls. It is owned exclusively by the Aircraft that embeds it and is
// only read by outside code (the reporter) after the tick driver has
// joined every worker.
type AircraftStats struct {
	FlightTimeHours float64
	ChargeTimeHours float64
	WaitTimeHours   float64
	PassengerMiles  float64
	FaultCount      int
	CompletedTicks  int
}
