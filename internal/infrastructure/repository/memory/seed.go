package memory

import (
	"time"

	"github.com/gridpool/playoff-pool/internal/domain/appsettings"
	"github.com/gridpool/playoff-pool/internal/domain/league"
	"github.com/gridpool/playoff-pool/internal/domain/player"
	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/roster"
	"github.com/gridpool/playoff-pool/internal/domain/schedule"
	"github.com/gridpool/playoff-pool/internal/domain/scoring"
)

const (
	LeagueIDLaunchPool = "launch-pool-2026"
	LeagueIDOfficeCup  = "office-cup-2026"
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:             LeagueIDLaunchPool,
			Name:           "Launch Pool",
			JoinCode:       "LAUNCH26",
			Format:         scoring.FormatPPR,
			CommissionerID: "user-alice",
		},
		{
			ID:             LeagueIDOfficeCup,
			Name:           "Office Cup",
			JoinCode:       "OFFICE26",
			Format:         scoring.FormatStandard,
			CommissionerID: "user-bob",
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{Key: "P.Mahomes-KC-QB", ESPNID: "3139477", FullName: "Patrick Mahomes", Team: "KC", Position: player.PositionQuarterback, IsActive: true},
		{Key: "J.Allen-BUF-QB", ESPNID: "3918298", FullName: "Josh Allen", Team: "BUF", Position: player.PositionQuarterback, IsActive: true},
		{Key: "L.Jackson-BAL-QB", ESPNID: "3916387", FullName: "Lamar Jackson", Team: "BAL", Position: player.PositionQuarterback, IsActive: true},
		{Key: "J.Goff-DET-QB", ESPNID: "3046779", FullName: "Jared Goff", Team: "DET", Position: player.PositionQuarterback, IsActive: true},
		{Key: "J.Hurts-PHI-QB", ESPNID: "4040715", FullName: "Jalen Hurts", Team: "PHI", Position: player.PositionQuarterback, IsActive: true},
		{Key: "S.Barkley-PHI-RB", ESPNID: "3929630", FullName: "Saquon Barkley", Team: "PHI", Position: player.PositionRunningBack, IsActive: true},
		{Key: "D.Henry-BAL-RB", ESPNID: "3043078", FullName: "Derrick Henry", Team: "BAL", Position: player.PositionRunningBack, IsActive: true},
		{Key: "J.Gibbs-DET-RB", ESPNID: "4429795", FullName: "Jahmyr Gibbs", Team: "DET", Position: player.PositionRunningBack, IsActive: true},
		{Key: "I.Pacheco-KC-RB", ESPNID: "4361529", FullName: "Isiah Pacheco", Team: "KC", Position: player.PositionRunningBack, IsActive: true},
		{Key: "J.Cook-BUF-RB", ESPNID: "4379399", FullName: "James Cook", Team: "BUF", Position: player.PositionRunningBack, IsActive: true},
		{Key: "A.St.Brown-DET-WR", ESPNID: "4374302", FullName: "Amon-Ra St. Brown", Team: "DET", Position: player.PositionWideReceiver, IsActive: true},
		{Key: "A.Brown-PHI-WR", ESPNID: "4047646", FullName: "A.J. Brown", Team: "PHI", Position: player.PositionWideReceiver, IsActive: true},
		{Key: "Z.Flowers-BAL-WR", ESPNID: "4429615", FullName: "Zay Flowers", Team: "BAL", Position: player.PositionWideReceiver, IsActive: true},
		{Key: "X.Worthy-KC-WR", ESPNID: "4683062", FullName: "Xavier Worthy", Team: "KC", Position: player.PositionWideReceiver, IsActive: true},
		{Key: "K.Shakir-BUF-WR", ESPNID: "4373678", FullName: "Khalil Shakir", Team: "BUF", Position: player.PositionWideReceiver, IsActive: true},
		{Key: "T.Kelce-KC-TE", ESPNID: "15847", FullName: "Travis Kelce", Team: "KC", Position: player.PositionTightEnd, IsActive: true},
		{Key: "S.LaPorta-DET-TE", ESPNID: "4430027", FullName: "Sam LaPorta", Team: "DET", Position: player.PositionTightEnd, IsActive: true},
		{Key: "D.Goedert-PHI-TE", ESPNID: "3121023", FullName: "Dallas Goedert", Team: "PHI", Position: player.PositionTightEnd, IsActive: true},
		{Key: "H.Butker-KC-K", ESPNID: "3055899", FullName: "Harrison Butker", Team: "KC", Position: player.PositionKicker, IsActive: true},
		{Key: "T.Bass-BUF-K", ESPNID: "3917232", FullName: "Tyler Bass", Team: "BUF", Position: player.PositionKicker, IsActive: true},
		{Key: "J.Elliott-PHI-K", ESPNID: "3050478", FullName: "Jake Elliott", Team: "PHI", Position: player.PositionKicker, IsActive: true},
		{Key: "KC-DST", ESPNID: "team-12", FullName: "Chiefs D/ST", Team: "KC", Position: player.PositionDefense, IsActive: true},
		{Key: "BUF-DST", ESPNID: "team-2", FullName: "Bills D/ST", Team: "BUF", Position: player.PositionDefense, IsActive: true},
		{Key: "PHI-DST", ESPNID: "team-21", FullName: "Eagles D/ST", Team: "PHI", Position: player.PositionDefense, IsActive: true},
		{Key: "DET-DST", ESPNID: "team-8", FullName: "Lions D/ST", Team: "DET", Position: player.PositionDefense, IsActive: true},
	}
}

func SeedSchedule() []schedule.Game {
	kickoff := func(day int, hour int) time.Time {
		return time.Date(2026, time.January, day, hour, 0, 0, 0, time.UTC)
	}

	return []schedule.Game{
		{ESPNGameID: "401700101", Round: round.WildCard, HomeTeam: "BUF", AwayTeam: "DEN", KickoffAt: kickoff(10, 18), Status: schedule.StatusScheduled},
		{ESPNGameID: "401700102", Round: round.WildCard, HomeTeam: "BAL", AwayTeam: "PIT", KickoffAt: kickoff(10, 21), Status: schedule.StatusScheduled},
		{ESPNGameID: "401700103", Round: round.WildCard, HomeTeam: "PHI", AwayTeam: "GB", KickoffAt: kickoff(11, 18), Status: schedule.StatusScheduled},
		{ESPNGameID: "401700104", Round: round.WildCard, HomeTeam: "HOU", AwayTeam: "LAC", KickoffAt: kickoff(11, 21), Status: schedule.StatusScheduled},
		{ESPNGameID: "401700105", Round: round.WildCard, HomeTeam: "TB", AwayTeam: "WSH", KickoffAt: kickoff(12, 18), Status: schedule.StatusScheduled},
		{ESPNGameID: "401700106", Round: round.WildCard, HomeTeam: "LAR", AwayTeam: "MIN", KickoffAt: kickoff(12, 21), Status: schedule.StatusScheduled},

		{ESPNGameID: "401700201", Round: round.Divisional, HomeTeam: "KC", AwayTeam: "HOU", KickoffAt: kickoff(17, 21), Status: schedule.StatusScheduled},
		{ESPNGameID: "401700202", Round: round.Divisional, HomeTeam: "DET", AwayTeam: "WSH", KickoffAt: kickoff(18, 1), Status: schedule.StatusScheduled},
		{ESPNGameID: "401700203", Round: round.Divisional, HomeTeam: "BUF", AwayTeam: "BAL", KickoffAt: kickoff(18, 21), Status: schedule.StatusScheduled},
		{ESPNGameID: "401700204", Round: round.Divisional, HomeTeam: "PHI", AwayTeam: "LAR", KickoffAt: kickoff(19, 1), Status: schedule.StatusScheduled},

		{ESPNGameID: "401700301", Round: round.Conference, HomeTeam: "KC", AwayTeam: "BUF", KickoffAt: kickoff(25, 20), Status: schedule.StatusScheduled},
		{ESPNGameID: "401700302", Round: round.Conference, HomeTeam: "PHI", AwayTeam: "DET", KickoffAt: kickoff(25, 23), Status: schedule.StatusScheduled},

		{ESPNGameID: "401700401", Round: round.SuperBowl, HomeTeam: "KC", AwayTeam: "PHI", KickoffAt: time.Date(2026, time.February, 8, 23, 30, 0, 0, time.UTC), Status: schedule.StatusScheduled},
	}
}

func SeedRosters() []roster.Roster {
	key := func(s string) *string { return &s }
	submitted := time.Date(2026, time.January, 9, 15, 0, 0, 0, time.UTC)

	return []roster.Roster{
		{
			UserID:      "user-alice",
			LeagueID:    LeagueIDLaunchPool,
			Round:       round.WildCard,
			QB:          roster.Entry{PlayerKey: key("J.Allen-BUF-QB"), WeeksHeld: 1},
			RB1:         roster.Entry{PlayerKey: key("S.Barkley-PHI-RB"), WeeksHeld: 1},
			RB2:         roster.Entry{PlayerKey: key("D.Henry-BAL-RB"), WeeksHeld: 1},
			WR1:         roster.Entry{PlayerKey: key("A.Brown-PHI-WR"), WeeksHeld: 1},
			WR2:         roster.Entry{PlayerKey: key("Z.Flowers-BAL-WR"), WeeksHeld: 1},
			TE:          roster.Entry{PlayerKey: key("D.Goedert-PHI-TE"), WeeksHeld: 1},
			K:           roster.Entry{PlayerKey: key("T.Bass-BUF-K"), WeeksHeld: 1},
			DST:         roster.Entry{PlayerKey: key("PHI-DST"), WeeksHeld: 1},
			SubmittedAt: &submitted,
			IsFinal:     true,
			UpdatedAt:   submitted,
		},
		{
			UserID:      "user-bob",
			LeagueID:    LeagueIDLaunchPool,
			Round:       round.WildCard,
			QB:          roster.Entry{PlayerKey: key("J.Hurts-PHI-QB"), WeeksHeld: 1},
			RB1:         roster.Entry{PlayerKey: key("J.Cook-BUF-RB"), WeeksHeld: 1},
			RB2:         roster.Entry{PlayerKey: key("S.Barkley-PHI-RB"), WeeksHeld: 1},
			WR1:         roster.Entry{PlayerKey: key("K.Shakir-BUF-WR"), WeeksHeld: 1},
			WR2:         roster.Entry{PlayerKey: key("A.Brown-PHI-WR"), WeeksHeld: 1},
			TE:          roster.Entry{WeeksHeld: 1},
			K:           roster.Entry{PlayerKey: key("J.Elliott-PHI-K"), WeeksHeld: 1},
			DST:         roster.Entry{PlayerKey: key("BUF-DST"), WeeksHeld: 1},
			SubmittedAt: &submitted,
			IsFinal:     true,
			UpdatedAt:   submitted,
		},
	}
}

func SeedAppSettings() map[string]string {
	return map[string]string{
		appsettings.KeyCurrentRound: string(round.WildCard),
	}
}
