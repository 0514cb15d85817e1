package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type Platform struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type SocialMediaAccount struct {
	ID         string
	Platform   Platform
	Username   string
	ProfileURL string
	CompanyID  string
}

// ScheduledItem is one persisted publication slot. Date and time are kept in their
// wire form; consumers parse them and skip items that do not parse.
type ScheduledItem struct {
	ID            string
	CompanyID     string
	Content       ContentItem
	Accounts      []SocialMediaAccount
	ScheduledDate string // YYYY-MM-DD
	ScheduledTime string // HH:mm:ss
	Active        bool
}

const EventDuration = 2 * time.Hour

// CalendarEvent is the render-ready projection of a ScheduledItem.
type CalendarEvent struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	Content  ContentItem
	Accounts []SocialMediaAccount
}

// SchedulingDraft is the transient composition behind the scheduling dialog.
type SchedulingDraft struct {
	Content *ContentItem
	Account *SocialMediaAccount
	Date    *Date
	Time    *LocalTime
}

func (d SchedulingDraft) Ready() bool {
	return d.Content != nil && d.Account != nil && d.Date != nil && d.Time != nil
}

// SchedulingRequest is the create payload sent to the scheduler gateway.
type SchedulingRequest struct {
	ContentKind           ContentKind
	ContentID             string
	CompanyID             string
	SocialMediaAccountIDs []string
	ScheduledDate         string
	ScheduledTime         string
	Active                bool
}

// MarshalJSON emits the content id under post_id, reel_id or story_id.
func (r SchedulingRequest) MarshalJSON() ([]byte, error) {
	key, err := r.ContentKind.WireKey()
	if err != nil {
		return nil, err
	}
	accounts := r.SocialMediaAccountIDs
	if accounts == nil {
		accounts = []string{}
	}
	return json.Marshal(map[string]any{
		key:                        r.ContentID,
		"company_id":               r.CompanyID,
		"social_media_account_ids": accounts,
		"scheduled_date":           r.ScheduledDate,
		"scheduled_time":           r.ScheduledTime,
		"active":                   r.Active,
	})
}

func (r *SchedulingRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		PostID                string   `json:"post_id"`
		ReelID                string   `json:"reel_id"`
		StoryID               string   `json:"story_id"`
		CompanyID             string   `json:"company_id"`
		SocialMediaAccountIDs []string `json:"social_media_account_ids"`
		ScheduledDate         string   `json:"scheduled_date"`
		ScheduledTime         string   `json:"scheduled_time"`
		Active                bool     `json:"active"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.PostID != "":
		r.ContentKind, r.ContentID = ContentKindPost, raw.PostID
	case raw.ReelID != "":
		r.ContentKind, r.ContentID = ContentKindReel, raw.ReelID
	case raw.StoryID != "":
		r.ContentKind, r.ContentID = ContentKindStory, raw.StoryID
	default:
		return fmt.Errorf("scheduling request has no content id")
	}

	r.CompanyID = raw.CompanyID
	r.SocialMediaAccountIDs = raw.SocialMediaAccountIDs
	r.ScheduledDate = raw.ScheduledDate
	r.ScheduledTime = raw.ScheduledTime
	r.Active = raw.Active
	return nil
}

// UpdateRequest moves an existing scheduled item to a new slot.
type UpdateRequest struct {
	SchedulerID   string `json:"scheduler_id"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
}

type DeleteRequest struct {
	SchedulerID string `json:"scheduler_id"`
}
