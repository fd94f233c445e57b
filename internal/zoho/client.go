package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
)

// Service families. Each has its own base URL per data center and, in the
// Meetings family's case, its own bearer header scheme.
const (
	serviceAccounts  = "accounts"
	serviceAPI       = "api"
	serviceMeeting   = "meeting"
	serviceLearn     = "learn"
	serviceMail      = "mail"
	serviceWorkDrive = "workdrive"
)

// meetingsPageSize is the single page requested from the sessions endpoint.
// No further pages are fetched; the mapper never emits more than this.
const meetingsPageSize = 100

// Client issues authenticated calls to the five Zoho service families of one
// data center and reshapes each family's response envelope. A Client is
// scoped to one request; its only state is the memoized meeting user info,
// which several capabilities need for the organization id.
type Client struct {
	accessToken string
	dc          DataCenter
	apiDomain   string

	HTTPClient *http.Client
	log        logging.Logger

	mu          sync.Mutex
	meetingUser *MeetingUser
}

// NewClient builds a gateway for one session's credentials. apiDomain is the
// optional generic-API override from the token response; pass "" when the
// token endpoint did not supply one.
func NewClient(accessToken string, dc DataCenter, apiDomain string, log logging.Logger) *Client {
	return &Client{
		accessToken: accessToken,
		dc:          dc,
		apiDomain:   apiDomain,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		log:         log,
	}
}

// serviceBase resolves the base URL for a family. The api_domain override
// from the token response applies to the generic API family only: the token
// endpoint never describes the other families' true bases, so those always
// use the static directory entry.
func (c *Client) serviceBase(service string) string {
	switch service {
	case serviceAccounts:
		return c.dc.Accounts
	case serviceMeeting:
		return c.dc.Meeting
	case serviceLearn:
		return c.dc.Learn
	case serviceMail:
		return c.dc.Mail
	case serviceWorkDrive:
		return c.dc.WorkDrive
	default:
		if c.apiDomain != "" {
			return c.apiDomain
		}
		return c.dc.API
	}
}

// get issues one GET against a family and returns the body. Non-2xx becomes
// a logged *UpstreamError; there is no retry and no alternate-URL probing.
func (c *Client) get(ctx context.Context, service, path string) ([]byte, error) {
	fullURL := c.serviceBase(service) + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	// The Meetings family predates Zoho's uniform Bearer scheme.
	if service == serviceMeeting {
		req.Header.Set("Authorization", "Zoho-oauthtoken "+c.accessToken)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error(ctx, "upstream request failed",
			"service", service,
			"status", resp.StatusCode,
			"url", fullURL,
			"dc", c.dc.Code,
			"body", string(body))
		return nil, &UpstreamError{Service: service, Status: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func (c *Client) getJSON(ctx context.Context, service, path string, out any) error {
	body, err := c.get(ctx, service, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", service, err)
	}
	return nil
}

// UserDetails fetches the authenticated identity from the accounts service.
// Failure here is fatal: nothing else works without an identity.
func (c *Client) UserDetails(ctx context.Context) (*User, error) {
	var raw struct {
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
		Name        string `json:"name"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		UserID      string `json:"user_id"`
		ID          string `json:"id"`
	}
	if err := c.getJSON(ctx, serviceAccounts, "/oauth/v2/userinfo", &raw); err != nil {
		return nil, err
	}

	name := raw.DisplayName
	if name == "" {
		name = raw.Name
	}
	if name == "" {
		name = trimJoin(raw.FirstName, raw.LastName)
	}

	id := raw.UserID
	if id == "" {
		id = raw.ID
	}

	return &User{Email: raw.Email, Name: name, ID: id}, nil
}

func trimJoin(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// meetingUserInfo fetches and memoizes the Meetings-family user record.
// The memo lives only as long as this Client (one request), and the mutex
// matters because the overview handler calls capabilities concurrently.
func (c *Client) meetingUserInfo(ctx context.Context) (*MeetingUser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.meetingUser != nil {
		return c.meetingUser, nil
	}

	body, err := c.get(ctx, serviceMeeting, "/api/v2/user.json")
	if err != nil {
		return nil, err
	}

	// Some deployments wrap the record in {"userDetails": {...}}.
	var env struct {
		UserDetails *MeetingUser `json:"userDetails"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.UserDetails != nil && env.UserDetails.Zsoid != 0 {
		c.meetingUser = env.UserDetails
		return c.meetingUser, nil
	}

	var mu MeetingUser
	if err := json.Unmarshal(body, &mu); err != nil {
		return nil, fmt.Errorf("decode meeting user info: %w", err)
	}
	c.meetingUser = &mu
	return c.meetingUser, nil
}

// Meetings lists the caller's sessions. One page of meetingsPageSize is
// requested and mapped; anything beyond it is truncated.
func (c *Client) Meetings(ctx context.Context) ([]Meeting, error) {
	userInfo, err := c.meetingUserInfo(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"listtype": {"all"},
		"index":    {"1"},
		"count":    {fmt.Sprint(meetingsPageSize)},
	}

	var env struct {
		Session []Meeting `json:"session"`
	}
	path := fmt.Sprintf("/api/v2/%d/sessions.json?%s", userInfo.Zsoid, params.Encode())
	if err := c.getJSON(ctx, serviceMeeting, path, &env); err != nil {
		return nil, err
	}

	sessions := env.Session
	if len(sessions) > meetingsPageSize {
		sessions = sessions[:meetingsPageSize]
	}
	if sessions == nil {
		sessions = []Meeting{}
	}
	return sessions, nil
}

// MeetingParticipants lists attendees of one session.
func (c *Client) MeetingParticipants(ctx context.Context, sessionKey string) ([]Participant, error) {
	userInfo, err := c.meetingUserInfo(ctx)
	if err != nil {
		return nil, err
	}

	var env struct {
		Participants []Participant `json:"participants"`
	}
	path := fmt.Sprintf("/api/v2/%d/sessions/%s/participants.json", userInfo.Zsoid, url.PathEscape(sessionKey))
	if err := c.getJSON(ctx, serviceMeeting, path, &env); err != nil {
		return nil, err
	}
	if env.Participants == nil {
		return []Participant{}, nil
	}
	return env.Participants, nil
}

// MeetingRecordings lists the caller's own recordings.
func (c *Client) MeetingRecordings(ctx context.Context) ([]Recording, error) {
	userInfo, err := c.meetingUserInfo(ctx)
	if err != nil {
		return nil, err
	}

	var env struct {
		Recordings []Recording `json:"recordings"`
	}
	path := fmt.Sprintf("/meeting/api/v2/%d/recordings.json", userInfo.Zsoid)
	if err := c.getJSON(ctx, serviceMeeting, path, &env); err != nil {
		return nil, err
	}
	if env.Recordings == nil {
		return []Recording{}, nil
	}
	return env.Recordings, nil
}

// SharedRecordings lists recordings shared with the caller. One
// authoritative URL; a 404 here is an upstream inconsistency and surfaces
// as an error instead of triggering URL-shape guessing.
func (c *Client) SharedRecordings(ctx context.Context) ([]Recording, error) {
	userInfo, err := c.meetingUserInfo(ctx)
	if err != nil {
		return nil, err
	}

	var env struct {
		Recordings       []Recording `json:"recordings"`
		SharedRecordings []Recording `json:"sharedRecordings"`
	}
	path := fmt.Sprintf("/meeting/api/v2/%d/sharedrecordings.json", userInfo.Zsoid)
	if err := c.getJSON(ctx, serviceMeeting, path, &env); err != nil {
		return nil, err
	}

	recs := env.Recordings
	if recs == nil {
		recs = env.SharedRecordings
	}
	if recs == nil {
		recs = []Recording{}
	}
	return recs, nil
}

// DriveUser is the WorkDrive-family view of the caller.
type DriveUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// driveResource is the JSON:API shape WorkDrive responds with.
type driveResource struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes struct {
		Name         string `json:"name"`
		DisplayName  string `json:"display_name"`
		EmailID      string `json:"email_id"`
		Type         string `json:"type"`
		CreatedTime  string `json:"created_time"`
		ModifiedTime string `json:"modified_time"`
		Extension    string `json:"extension"`
		DownloadURL  string `json:"download_url"`
		Permalink    string `json:"permalink"`
		IsFolder     bool   `json:"is_folder"`
	} `json:"attributes"`
}

func (r driveResource) item() DriveItem {
	return DriveItem{
		ID:           r.ID,
		Kind:         r.Attributes.Type,
		Name:         r.Attributes.Name,
		CreatedTime:  r.Attributes.CreatedTime,
		ModifiedTime: r.Attributes.ModifiedTime,
		Extension:    r.Attributes.Extension,
		DownloadURL:  r.Attributes.DownloadURL,
		Permalink:    r.Attributes.Permalink,
		IsFolder:     r.Attributes.IsFolder,
	}
}

// WorkDriveUserInfo resolves the caller's WorkDrive id. Failure is fatal to
// the shared-files chain that needs it.
func (c *Client) WorkDriveUserInfo(ctx context.Context) (*DriveUser, error) {
	var env struct {
		Data driveResource `json:"data"`
	}
	if err := c.getJSON(ctx, serviceWorkDrive, "/workdrive/api/v1/users/me", &env); err != nil {
		return nil, err
	}
	return &DriveUser{
		ID:    env.Data.ID,
		Name:  env.Data.Attributes.DisplayName,
		Email: env.Data.Attributes.EmailID,
	}, nil
}

// WorkDrivePrivateSpace resolves the private-space id for a WorkDrive user.
func (c *Client) WorkDrivePrivateSpace(ctx context.Context, userID string) (string, error) {
	var env struct {
		Data []driveResource `json:"data"`
	}
	path := fmt.Sprintf("/workdrive/api/v1/users/%s/privatespace", url.PathEscape(userID))
	if err := c.getJSON(ctx, serviceWorkDrive, path, &env); err != nil {
		return "", err
	}
	if len(env.Data) == 0 {
		return "", &UpstreamError{Service: serviceWorkDrive, Status: 200, Body: "no privatespace for user"}
	}
	return env.Data[0].ID, nil
}

// SharedFiles lists everything shared into a private space: incoming files
// and incoming folders, concatenated. A failed sub-call degrades to a
// partial (possibly empty) result; both failing yields the last error.
func (c *Client) SharedFiles(ctx context.Context, privatespaceID string) ([]DriveItem, error) {
	items := []DriveItem{}
	var lastErr error
	ok := 0

	for _, sub := range []string{"incomingfiles", "incomingfolders"} {
		var env struct {
			Data []driveResource `json:"data"`
		}
		path := fmt.Sprintf("/workdrive/api/v1/privatespace/%s/%s", url.PathEscape(privatespaceID), sub)
		if err := c.getJSON(ctx, serviceWorkDrive, path, &env); err != nil {
			c.log.Warn(ctx, "shared files sub-call failed", "endpoint", sub, "err", err)
			lastErr = err
			continue
		}
		ok++
		for _, r := range env.Data {
			items = append(items, r.item())
		}
	}

	if ok == 0 {
		return []DriveItem{}, lastErr
	}
	return items, nil
}

// FolderContents lists the files inside one WorkDrive folder.
func (c *Client) FolderContents(ctx context.Context, folderID string) ([]DriveItem, error) {
	var env struct {
		Data []driveResource `json:"data"`
	}
	path := fmt.Sprintf("/workdrive/api/v1/files/%s/files", url.PathEscape(folderID))
	if err := c.getJSON(ctx, serviceWorkDrive, path, &env); err != nil {
		return nil, err
	}

	items := make([]DriveItem, 0, len(env.Data))
	for _, r := range env.Data {
		items = append(items, r.item())
	}
	return items, nil
}

// WorkDriveFiles lists the caller's own files.
func (c *Client) WorkDriveFiles(ctx context.Context) ([]DriveItem, error) {
	var env struct {
		Data []driveResource `json:"data"`
	}
	if err := c.getJSON(ctx, serviceWorkDrive, "/workdrive/api/v1/files", &env); err != nil {
		return nil, err
	}

	items := make([]DriveItem, 0, len(env.Data))
	for _, r := range env.Data {
		items = append(items, r.item())
	}
	return items, nil
}

// LearnCourses lists the caller's courses.
func (c *Client) LearnCourses(ctx context.Context) ([]Course, error) {
	var env struct {
		Courses []struct {
			ID          json.Number `json:"id"`
			Name        string      `json:"name"`
			CourseName  string      `json:"courseName"`
			Description string      `json:"description"`
			CreatedBy   string      `json:"createdBy"`
			CreatedTime string      `json:"createdTime"`
		} `json:"courses"`
	}
	if err := c.getJSON(ctx, serviceLearn, "/api/v1/courses", &env); err != nil {
		return nil, err
	}

	courses := make([]Course, 0, len(env.Courses))
	for _, raw := range env.Courses {
		name := raw.Name
		if name == "" {
			name = raw.CourseName
		}
		courses = append(courses, Course{
			ID:          raw.ID.String(),
			Name:        name,
			Description: raw.Description,
			CreatedBy:   raw.CreatedBy,
			CreatedTime: raw.CreatedTime,
		})
	}
	return courses, nil
}

// MailMessages lists the inbox of the caller's first mail account. A caller
// without any mail account genuinely has no messages: that is an empty
// result, not a failure.
func (c *Client) MailMessages(ctx context.Context) ([]MailMessage, error) {
	var accounts struct {
		Data []struct {
			AccountID string `json:"accountId"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, serviceMail, "/api/accounts", &accounts); err != nil {
		return nil, err
	}
	if len(accounts.Data) == 0 {
		c.log.Info(ctx, "no mail accounts found")
		return []MailMessage{}, nil
	}

	var env struct {
		Data []struct {
			MessageID     json.Number `json:"messageId"`
			Subject       string      `json:"subject"`
			FromAddress   string      `json:"fromAddress"`
			Sender        string      `json:"sender"`
			ToAddress     string      `json:"toAddress"`
			ReceivedTime  string      `json:"receivedTime"`
			Summary       string      `json:"summary"`
			HasAttachment string      `json:"hasAttachment"`
		} `json:"data"`
	}
	path := fmt.Sprintf("/api/accounts/%s/messages/view", url.PathEscape(accounts.Data[0].AccountID))
	if err := c.getJSON(ctx, serviceMail, path, &env); err != nil {
		return nil, err
	}

	msgs := make([]MailMessage, 0, len(env.Data))
	for _, raw := range env.Data {
		msgs = append(msgs, MailMessage{
			MessageID:     raw.MessageID.String(),
			Subject:       raw.Subject,
			FromAddress:   raw.FromAddress,
			Sender:        raw.Sender,
			ToAddress:     raw.ToAddress,
			ReceivedTime:  raw.ReceivedTime,
			Summary:       raw.Summary,
			HasAttachment: raw.HasAttachment != "" && raw.HasAttachment != "0",
		})
	}
	return msgs, nil
}
