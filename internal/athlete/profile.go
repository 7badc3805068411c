package athlete

// Profile is the athlete card shown on the dashboard and profile screens.
// The aggregator never reads it, peripheral screens do.
type Profile struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Avatar          string   `json:"avatar"`
	SportFocus      string   `json:"sportFocus"`
	Age             int      `json:"age"`
	Gender          string   `json:"gender"`
	HeightCm        int      `json:"heightCm"`
	WeightKg        int      `json:"weightKg"`
	Occupation      string   `json:"occupation"`
	Level           string   `json:"level"`
	ProfileType     string   `json:"profileType"`
	FTPWatts        int      `json:"ftpWatts"`
	RunningPace     string   `json:"runningPace"`
	PowerZones      []string `json:"powerZones"`
	HRZones         []string `json:"hrZones"`
	WeeklyTSSTarget int      `json:"weeklyTssTarget"`
}
