package athlete

import (
	"context"
	"errors"
	"fmt"

	"github.com/letimartin/traincal/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("athlete profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetProfile returns the (single) athlete profile. The app is single-athlete
// for now, the table holds one row.
func (r *Repo) GetProfile(ctx context.Context) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athlete.getProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profile := &Profile{}
	err = r.db.QueryRow(ctx, `
		SELECT
			id, name, avatar, sport_focus, age, gender,
			height_cm, weight_kg, occupation, level, profile_type,
			ftp_watts, running_pace, power_zones, hr_zones, weekly_tss_target
		FROM athlete_profile
		ORDER BY id
		LIMIT 1
	`).Scan(
		&profile.ID, &profile.Name, &profile.Avatar, &profile.SportFocus, &profile.Age, &profile.Gender,
		&profile.HeightCm, &profile.WeightKg, &profile.Occupation, &profile.Level, &profile.ProfileType,
		&profile.FTPWatts, &profile.RunningPace, &profile.PowerZones, &profile.HRZones, &profile.WeeklyTSSTarget,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get athlete profile: %w", err)
	}

	return profile, nil
}
