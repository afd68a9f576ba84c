package analyzer

import "testing"

func TestShapeCertificateFencedJSON(t *testing.T) {
	raw := "```json\n{\"recipientName\":\"A\",\"eventTitle\":\"B\"}\n```"

	result := ShapeCertificate(raw)

	if result.Error != "" {
		t.Fatalf("unexpected parse error: %s", result.Error)
	}
	if result.Data["recipientName"] != "A" || result.Data["eventTitle"] != "B" {
		t.Errorf("unexpected data: %v", result.Data)
	}
	if len(result.Labels) != 5 {
		t.Errorf("expected 5 fixed labels, got %d", len(result.Labels))
	}
	if result.Labels["recipientName"] != "Nama Penerima" {
		t.Errorf("recipientName label = %q", result.Labels["recipientName"])
	}
	if result.Labels["issuedBy"] != "Diterbitkan Oleh" {
		t.Errorf("issuedBy label = %q", result.Labels["issuedBy"])
	}
}

func TestShapeCertificatePlainJSON(t *testing.T) {
	result := ShapeCertificate(`{"recipientName":"A","extraField":"kept"}`)

	if result.Error != "" {
		t.Fatalf("unexpected parse error: %s", result.Error)
	}
	// Keys outside the label set pass through in the data unlabeled.
	if result.Data["extraField"] != "kept" {
		t.Errorf("extra key dropped: %v", result.Data)
	}
	if _, ok := result.Labels["extraField"]; ok {
		t.Error("extra key must not gain a label")
	}
}

func TestShapeCertificateMalformed(t *testing.T) {
	raw := "The certificate shows a completion award."

	result := ShapeCertificate(raw)

	if result.Error != "Failed to parse structured data" {
		t.Errorf("error = %q, want parse failure message", result.Error)
	}
	if result.ExtractedText != raw {
		t.Errorf("extractedText = %q, want the raw model output", result.ExtractedText)
	}
	if result.Data != nil {
		t.Errorf("data must be empty on parse failure, got %v", result.Data)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding space", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		if got := stripCodeFences(tt.in); got != tt.want {
			t.Errorf("%s: stripCodeFences = %q, want %q", tt.name, got, tt.want)
		}
	}
}
