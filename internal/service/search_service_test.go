package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"unilink.id/campusclubs/internal/model"
)

func newDocBuilder() *meiliSearchService {
	return &meiliSearchService{sanitizer: bluemonday.StrictPolicy()}
}

func TestAnnouncementDoc_CarriesClubTitle(t *testing.T) {
	s := newDocBuilder()

	announcement := &model.Announcement{
		ID:          uuid.New(),
		ClubID:      uuid.New(),
		Club:        &model.Club{Title: "Robotics Club"},
		Title:       "Tryouts",
		Description: "<p>Open &amp; free for all</p>",
		CreatedAt:   time.Now(),
	}

	doc := s.announcementDoc(announcement)

	assert.Equal(t, announcement.ID.String(), doc.ID)
	assert.Equal(t, announcement.ClubID.String(), doc.ClubID)
	assert.Equal(t, "Robotics Club", doc.ClubName)
	assert.Equal(t, "Open & free for all", doc.Description)
}

func TestAnnouncementDoc_NoClubLoaded(t *testing.T) {
	s := newDocBuilder()

	doc := s.announcementDoc(&model.Announcement{
		ID:     uuid.New(),
		ClubID: uuid.New(),
		Title:  "Tryouts",
	})

	assert.Empty(t, doc.ClubName)
}

func TestEventDoc_StripsMarkup(t *testing.T) {
	s := newDocBuilder()

	event := &model.Event{
		ID:          uuid.New(),
		ClubID:      uuid.New(),
		Title:       "Hack Night",
		Description: "<div>Bring laptops</div><br>Snacks   provided",
		Venue:       "Lab 3",
		EventDate:   time.Now().Add(48 * time.Hour),
	}

	doc := s.eventDoc(event)

	assert.Equal(t, "Bring laptops Snacks provided", doc.Description)
	assert.Equal(t, "Lab 3", doc.Venue)
	assert.Equal(t, event.EventDate.Unix(), doc.EventDate)
}

func TestDecodeHit(t *testing.T) {
	doc := decodeHit(map[string]interface{}{"id": "abc", "title": "Tryouts"})
	assert.Equal(t, "Tryouts", doc["title"])

	assert.Nil(t, decodeHit(make(chan int)))
}
