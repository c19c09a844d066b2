package espn

import (
	"strings"
	"time"

	"github.com/gridpool/playoff-pool/internal/usecase"
)

// Wire shapes for the public scoreboard and summary endpoints. Only the
// fields the sync pipeline reads are decoded.

type scoreboardEnvelope struct {
	Events []eventPayload `json:"events"`
}

type eventPayload struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Date         string               `json:"date"`
	Competitions []competitionPayload `json:"competitions"`
}

type competitionPayload struct {
	ID          string              `json:"id"`
	Competitors []competitorPayload `json:"competitors"`
	Status      statusPayload       `json:"status"`
}

type competitorPayload struct {
	Team     teamPayload `json:"team"`
	HomeAway string      `json:"homeAway"`
}

type teamPayload struct {
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type statusPayload struct {
	Type statusTypePayload `json:"type"`
}

type statusTypePayload struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

type summaryEnvelope struct {
	Boxscore boxscorePayload `json:"boxscore"`
}

type boxscorePayload struct {
	Players []teamPlayersPayload `json:"players"`
}

type teamPlayersPayload struct {
	Team       teamPayload        `json:"team"`
	Statistics []statGroupPayload `json:"statistics"`
}

type statGroupPayload struct {
	Name     string           `json:"name"`
	Labels   []string         `json:"labels"`
	Athletes []athletePayload `json:"athletes"`
}

type athletePayload struct {
	Athlete athleteIdentity `json:"athlete"`
	Labels  []string        `json:"labels"`
	Stats   []string        `json:"stats"`
}

type athleteIdentity struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

func mapEventToExternalGame(event eventPayload) (usecase.ExternalGame, bool) {
	if event.ID == "" || len(event.Competitions) == 0 {
		return usecase.ExternalGame{}, false
	}

	competition := event.Competitions[0]
	game := usecase.ExternalGame{
		ID:        event.ID,
		Name:      event.Name,
		State:     strings.ToLower(competition.Status.Type.State),
		Completed: competition.Status.Type.Completed,
	}

	for _, competitor := range competition.Competitors {
		switch strings.ToLower(competitor.HomeAway) {
		case "home":
			game.HomeTeam = competitor.Team.Abbreviation
		case "away":
			game.AwayTeam = competitor.Team.Abbreviation
		}
	}

	if parsed, err := time.Parse(time.RFC3339, event.Date); err == nil {
		game.StartsAt = parsed
	} else if parsed, err := time.Parse("2006-01-02T15:04Z", event.Date); err == nil {
		game.StartsAt = parsed
	}

	return game, true
}

func mapSummaryToBoxScore(gameID string, summary summaryEnvelope) usecase.ExternalBoxScore {
	box := usecase.ExternalBoxScore{
		GameID: gameID,
		Teams:  make([]usecase.ExternalTeamStats, 0, len(summary.Boxscore.Players)),
	}

	for _, teamData := range summary.Boxscore.Players {
		teamStats := usecase.ExternalTeamStats{
			Team:   teamData.Team.Abbreviation,
			Groups: make([]usecase.ExternalStatGroup, 0, len(teamData.Statistics)),
		}

		for _, group := range teamData.Statistics {
			mapped := usecase.ExternalStatGroup{
				Name:     group.Name,
				Labels:   group.Labels,
				Athletes: make([]usecase.ExternalAthleteStats, 0, len(group.Athletes)),
			}

			for _, athlete := range group.Athletes {
				if athlete.Athlete.ID == "" {
					continue
				}
				// Some payloads repeat the label row per athlete; the
				// group-level row wins when both are present.
				if len(mapped.Labels) == 0 && len(athlete.Labels) > 0 {
					mapped.Labels = athlete.Labels
				}
				mapped.Athletes = append(mapped.Athletes, usecase.ExternalAthleteStats{
					AthleteID: athlete.Athlete.ID,
					Name:      athlete.Athlete.DisplayName,
					Values:    athlete.Stats,
				})
			}

			teamStats.Groups = append(teamStats.Groups, mapped)
		}

		box.Teams = append(box.Teams, teamStats)
	}

	return box
}
