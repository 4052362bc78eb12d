package render

import (
	"strings"
	"testing"

	"github.com/globalnotes/notes-workspace/internal/model"
)

func TestSharedNote_StripsScripts(t *testing.T) {
	payload := model.SharePayload{
		Title:   "T",
		Content: `before<script type="text/javascript">alert("xss")</script>after`,
	}
	html, err := SharedNote(payload, "", "Global Notes Workspace")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script") || strings.Contains(html, "alert(") {
		t.Fatal("script span survived rendering")
	}
	if !strings.Contains(html, "beforeafter") {
		t.Fatal("surrounding content lost")
	}
}

func TestSharedNote_KeepsBenignMarkup(t *testing.T) {
	payload := model.SharePayload{Title: "T", Content: "<b>bold</b> and <i>italic</i>"}
	html, err := SharedNote(payload, "", "Global Notes Workspace")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "<b>bold</b>") {
		t.Fatal("benign markup was escaped or removed")
	}
}

func TestSharedNote_EscapesTitleAndSharer(t *testing.T) {
	payload := model.SharePayload{Title: `<img src=x onerror=alert(1)>`, Content: "c"}
	html, err := SharedNote(payload, `<b>eve</b>`, "Global Notes Workspace")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<img src=x") || strings.Contains(html, "<b>eve</b>") {
		t.Fatal("title or sharer rendered unescaped")
	}
	if !strings.Contains(html, "Shared by") {
		t.Fatal("missing attribution footer")
	}
}

func TestSharedNote_Defaults(t *testing.T) {
	html, err := SharedNote(model.SharePayload{}, "", "Global Notes Workspace")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "Untitled Shared Note") {
		t.Fatal("missing default title")
	}
	if !strings.Contains(html, "Shared via Global Notes Workspace") {
		t.Fatal("missing anonymous attribution")
	}
}
