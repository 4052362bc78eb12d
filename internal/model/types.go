package model

// Note is the canonical persisted note shape. Identity is ID, generated once
// at creation and immutable afterwards. UpdatedAt must be refreshed by the
// caller on every content-affecting mutation; the model does not enforce it.
type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"` // rich text, may carry HTML
	Tags      []string `json:"tags"`
	FolderID  string   `json:"folderId,omitempty"` // weak reference to Folder.ID
	Theme     string   `json:"theme"`
	CreatedAt string   `json:"createdAt"` // RFC 3339
	UpdatedAt string   `json:"updatedAt"` // RFC 3339
}

// Folder groups notes inside a user namespace. Deleting a folder must not
// delete its notes; orphaned notes fall back to the "All Notes" view.
type Folder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// Account is a locally registered user. Username is the case-insensitive
// unique key. PasswordHash holds a bcrypt hash, never the plaintext.
type Account struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Avatar       string `json:"avatar,omitempty"` // data URI or URL
	Joined       string `json:"joined,omitempty"`
}

// SharePayload is the wire entity embedded in a share URL. Deliberately
// minimal: no id, tags or folder, since it must round-trip through a
// length-constrained URL.
type SharePayload struct {
	Title   string `json:"t"`
	Content string `json:"c"`
	Date    string `json:"d"`
}
