package zoho

// TokenSet is the credential bundle returned by the token endpoint.
// APIDomain is only present on some deployments; when set it overrides the
// static generic-API base URL (and nothing else).
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
	APIDomain    string `json:"api_domain,omitempty"`
}

// User is the authenticated identity from the accounts service.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	ID    string `json:"id"`
}

// MeetingUser is the Meetings-family view of the caller. Zsoid is the
// numeric organization id most Meetings endpoints are scoped by.
type MeetingUser struct {
	Zsoid                    int64  `json:"zsoid"`
	PrimaryEmail             string `json:"primaryEmail"`
	FullName                 string `json:"fullName"`
	DisplayName              string `json:"displayName"`
	OrgName                  string `json:"orgName"`
	MeetingRedirectionServer string `json:"meetingRedirectionServer"`
}

// Meeting is one scheduled or past session, reshaped field-for-field from
// the upstream session object.
type Meeting struct {
	MeetingKey        string `json:"meetingKey"`
	Topic             string `json:"topic"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Duration          int64  `json:"duration"`
	DurationInHours   string `json:"durationInHours"`
	JoinLink          string `json:"joinLink"`
	PresenterFullName string `json:"presenterFullName"`
	PresenterEmail    string `json:"presenterEmail"`
	PresenterZuid     string `json:"presenterZuid"`
	CreatorZuid       string `json:"creatorZuid"`
	Timezone          string `json:"timezone"`
	MeetingEmbedURL   string `json:"meetingEmbedUrl"`
	Pwd               string `json:"pwd"`
	EncryptPwd        string `json:"encryptPwd"`
	SysID             string `json:"sysId"`
	EventTime         string `json:"eventTime"`
	IsRecurring       bool   `json:"isRecurring"`
	SDate             string `json:"sDate"`
	STime             string `json:"sTime"`
	TimePeriod        string `json:"timePeriod"`
	StartTimeMillis   int64  `json:"startTimeMillis"`
}

// Participant is one attendee of a session.
type Participant struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	JoinTime  string `json:"joinTime"`
	LeaveTime string `json:"leaveTime"`
	Duration  int64  `json:"duration"`
}

// Recording is one meeting recording (own or shared).
type Recording struct {
	ERecordingID             string `json:"erecordingId"`
	RecordingID              string `json:"recordingId"`
	Topic                    string `json:"topic"`
	DatenTime                string `json:"datenTime"`
	Duration                 int64  `json:"duration"`
	DurationInMins           int64  `json:"durationInMins"`
	FileSize                 string `json:"fileSize"`
	DownloadURL              string `json:"downloadUrl"`
	TranscriptionDownloadURL string `json:"transcriptionDownloadUrl,omitempty"`
	PlayURL                  string `json:"playUrl"`
	ShareURL                 string `json:"shareUrl"`
	CreatorName              string `json:"creatorName"`
	MeetingKey               string `json:"meetingKey"`
	Status                   string `json:"status"`
	IsTranscriptGenerated    bool   `json:"isTranscriptGenerated"`
}

// DriveItem is one WorkDrive file or folder, flattened from the JSON:API
// resource shape ({id, type, attributes{...}}).
type DriveItem struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"` // attributes.type: "file", "folder", ...
	Name         string `json:"name"`
	CreatedTime  string `json:"createdTime"`
	ModifiedTime string `json:"modifiedTime"`
	Extension    string `json:"extension,omitempty"`
	DownloadURL  string `json:"downloadUrl,omitempty"`
	Permalink    string `json:"permalink,omitempty"`
	IsFolder     bool   `json:"isFolder"`
}

// Course is one TrainerCentral/Learn course.
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedBy   string `json:"createdBy,omitempty"`
	CreatedTime string `json:"createdTime,omitempty"`
}

// MailMessage is one inbox message summary.
type MailMessage struct {
	MessageID     string `json:"messageId"`
	Subject       string `json:"subject"`
	FromAddress   string `json:"fromAddress"`
	Sender        string `json:"sender"`
	ToAddress     string `json:"toAddress,omitempty"`
	ReceivedTime  string `json:"receivedTime"`
	Summary       string `json:"summary,omitempty"`
	HasAttachment bool   `json:"hasAttachment"`
}
