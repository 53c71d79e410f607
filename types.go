package folio

// Blog is a blog post managed from the admin panel and listed on the
// public site. Date is assigned at creation and never changes afterwards.
type Blog struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	ReadTime string `json:"readTime"`
	Image    string `json:"image,omitempty"`

	// ContentHTML is populated only on single-post reads.
	ContentHTML string `json:"contentHtml,omitempty"`
}

// Project is a portfolio project card. Tech order is caller-supplied and
// preserved as-is.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tech        []string `json:"tech"`
	LiveURL     string   `json:"liveUrl"`
	GithubURL   string   `json:"githubUrl"`
	Featured    bool     `json:"featured"`
	Category    string   `json:"category"`
}

// Experience is a work or education timeline entry.
type Experience struct {
	ID          int64    `json:"id"`
	Type        string   `json:"type"` // "work" or "education"
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// Stat is a headline number shown on the public site (e.g. "Years of
// experience: 10+").
type Stat struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Suffix string `json:"suffix"`
}

// SpeakingEngagement is one half of the speaking & publications aggregate.
type SpeakingEngagement struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Event    string `json:"event"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Type     string `json:"type"` // talk, workshop or panel
}

// Publication is the other half of the speaking & publications aggregate.
type Publication struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Journal string `json:"journal"`
	Date    string `json:"date"`
	Authors string `json:"authors"`
	Link    string `json:"link"`
}

// SpeakingPublications is the aggregate fetched and replaced as one
// logical unit.
type SpeakingPublications struct {
	SpeakingEngagements []SpeakingEngagement `json:"speakingEngagements"`
	Publications        []Publication        `json:"publications"`
}

// Contact message lifecycle states. The store writes whatever value the
// caller supplies; the unread -> read -> replied progression is a UI
// convention, not an enforced state machine.
const (
	StatusUnread  = "unread"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// ContactMessage is a visitor-submitted contact form entry. The only
// entity with a lifecycle status.
type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Image is metadata for an uploaded asset referenced by blog and project
// image fields.
type Image struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Size         int    `json:"size"`
	UploadedAt   string `json:"uploadedAt"`
}
