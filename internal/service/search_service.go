package service

import (
	"encoding/json"
	"html"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"

	"unilink.id/campusclubs/internal/model"
)

const (
	announcementIndex = "announcements"
	eventIndex        = "events"
)

type SearchService interface {
	IndexAnnouncement(announcement *model.Announcement)
	RemoveAnnouncement(id uuid.UUID)
	IndexEvent(event *model.Event)
	RemoveEvent(id uuid.UUID)
	Search(query string) (*SearchResults, error)
}

type SearchResults struct {
	Announcements []map[string]interface{} `json:"announcements"`
	Events        []map[string]interface{} `json:"events"`
}

type meiliAnnouncementDoc struct {
	ID          string `json:"id"`
	ClubID      string `json:"club_id"`
	ClubName    string `json:"club_name,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
}

type meiliEventDoc struct {
	ID          string `json:"id"`
	ClubID      string `json:"club_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Venue       string `json:"venue"`
	EventDate   int64  `json:"event_date"`
}

type meiliSearchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewMeiliSearchService(client meilisearch.ServiceManager) SearchService {
	s := &meiliSearchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	return s
}

func (s *meiliSearchService) initIndexes() {
	if _, err := s.client.Index(announcementIndex).UpdateFilterableAttributes(&[]interface{}{"club_id"}); err != nil {
		log.Printf("Failed to configure %s index: %v", announcementIndex, err)
	}
	if _, err := s.client.Index(announcementIndex).UpdateSortableAttributes(&[]string{"created_at"}); err != nil {
		log.Printf("Failed to configure %s index sorting: %v", announcementIndex, err)
	}
	if _, err := s.client.Index(eventIndex).UpdateFilterableAttributes(&[]interface{}{"club_id"}); err != nil {
		log.Printf("Failed to configure %s index: %v", eventIndex, err)
	}
	if _, err := s.client.Index(eventIndex).UpdateSortableAttributes(&[]string{"event_date"}); err != nil {
		log.Printf("Failed to configure %s index sorting: %v", eventIndex, err)
	}
}

// cleanContentForIndex strips markup so only readable text gets indexed.
func (s *meiliSearchService) cleanContentForIndex(content string) string {
	spaced := strings.NewReplacer("</p>", " ", "<br>", " ", "</div>", " ").Replace(content)
	clean := s.sanitizer.Sanitize(spaced)
	clean = html.UnescapeString(clean)
	return strings.Join(strings.Fields(clean), " ")
}

func (s *meiliSearchService) announcementDoc(announcement *model.Announcement) meiliAnnouncementDoc {
	doc := meiliAnnouncementDoc{
		ID:          announcement.ID.String(),
		ClubID:      announcement.ClubID.String(),
		Title:       announcement.Title,
		Description: s.cleanContentForIndex(announcement.Description),
		CreatedAt:   announcement.CreatedAt.Unix(),
	}
	if announcement.Club != nil {
		doc.ClubName = announcement.Club.Title
	}
	return doc
}

func (s *meiliSearchService) IndexAnnouncement(announcement *model.Announcement) {
	doc := s.announcementDoc(announcement)

	if _, err := s.client.Index(announcementIndex).AddDocuments([]meiliAnnouncementDoc{doc}, strPtr("id")); err != nil {
		log.Printf("Failed to index announcement %s: %v", announcement.ID, err)
	}
}

func (s *meiliSearchService) RemoveAnnouncement(id uuid.UUID) {
	if _, err := s.client.Index(announcementIndex).DeleteDocument(id.String()); err != nil {
		log.Printf("Failed to remove announcement %s from index: %v", id, err)
	}
}

func (s *meiliSearchService) eventDoc(event *model.Event) meiliEventDoc {
	return meiliEventDoc{
		ID:          event.ID.String(),
		ClubID:      event.ClubID.String(),
		Title:       event.Title,
		Description: s.cleanContentForIndex(event.Description),
		Venue:       event.Venue,
		EventDate:   event.EventDate.Unix(),
	}
}

func (s *meiliSearchService) IndexEvent(event *model.Event) {
	doc := s.eventDoc(event)

	if _, err := s.client.Index(eventIndex).AddDocuments([]meiliEventDoc{doc}, strPtr("id")); err != nil {
		log.Printf("Failed to index event %s: %v", event.ID, err)
	}
}

func (s *meiliSearchService) RemoveEvent(id uuid.UUID) {
	if _, err := s.client.Index(eventIndex).DeleteDocument(id.String()); err != nil {
		log.Printf("Failed to remove event %s from index: %v", id, err)
	}
}

func (s *meiliSearchService) Search(query string) (*SearchResults, error) {
	results := &SearchResults{
		Announcements: []map[string]interface{}{},
		Events:        []map[string]interface{}{},
	}

	announcements, err := s.client.Index(announcementIndex).Search(query, &meilisearch.SearchRequest{Limit: 20})
	if err != nil {
		return nil, err
	}
	for _, hit := range announcements.Hits {
		if doc := decodeHit(hit); doc != nil {
			results.Announcements = append(results.Announcements, doc)
		}
	}

	events, err := s.client.Index(eventIndex).Search(query, &meilisearch.SearchRequest{Limit: 20})
	if err != nil {
		return nil, err
	}
	for _, hit := range events.Hits {
		if doc := decodeHit(hit); doc != nil {
			results.Events = append(results.Events, doc)
		}
	}

	return results, nil
}

// decodeHit round-trips a search hit through JSON rather than asserting on
// the SDK's hit type.
func decodeHit(hit interface{}) map[string]interface{} {
	raw, err := json.Marshal(hit)
	if err != nil {
		return nil
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return doc
}

func strPtr(s string) *string {
	return &s
}
