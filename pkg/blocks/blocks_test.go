package blocks

import "testing"

func TestLookupContainers(t *testing.T) {
	tests := []struct {
		tag      Tag
		children bool
		content  bool
	}{
		{TagMJML, true, false},
		{TagHead, true, false},
		{TagBody, true, false},
		{TagWrapper, true, false},
		{TagSection, true, false},
		{TagGroup, true, false},
		{TagColumn, true, false},
		{TagSocial, true, false},
		{TagAttributes, true, false},
		{TagText, false, true},
		{TagButton, false, true},
		{TagRaw, false, true},
		{TagImage, false, false},
		{TagDivider, false, false},
		{TagFont, false, false},
		{TagBreakpoint, false, false},
	}

	for _, tt := range tests {
		def := Lookup(tt.tag)
		if def.CanHaveChildren != tt.children {
			t.Errorf("Lookup(%s).CanHaveChildren = %v, want %v", tt.tag, def.CanHaveChildren, tt.children)
		}
		if def.HasContent != tt.content {
			t.Errorf("Lookup(%s).HasContent = %v, want %v", tt.tag, def.HasContent, tt.content)
		}
	}
}

func TestLookupUnknownTag(t *testing.T) {
	def := Lookup("mj-hologram")
	if def.CanHaveChildren {
		t.Error("unknown tag should not accept children")
	}
	if def.HasContent {
		t.Error("unknown tag should not carry content")
	}
	if len(def.DefaultAttributes) != 0 {
		t.Errorf("unknown tag should have no defaults, got %v", def.DefaultAttributes)
	}
	if Known("mj-hologram") {
		t.Error("Known should reject unregistered tags")
	}
}

func TestAccepts(t *testing.T) {
	tests := []struct {
		parent Tag
		child  Tag
		want   bool
	}{
		{TagMJML, TagBody, true},
		{TagMJML, TagSection, false},
		{TagBody, TagSection, true},
		{TagBody, TagSocialElement, false},
		{TagSection, TagColumn, true},
		{TagSection, TagGroup, true},
		{TagGroup, TagColumn, true},
		{TagGroup, TagSection, false},
		{TagColumn, TagSocial, true},
		{TagSocial, TagSocialElement, true},
		{TagColumn, TagColumn, false},
		{TagAttributes, TagText, true},
		{TagAttributes, TagButton, true},
	}

	for _, tt := range tests {
		if got := Lookup(tt.parent).Accepts(tt.child); got != tt.want {
			t.Errorf("Lookup(%s).Accepts(%s) = %v, want %v", tt.parent, tt.child, got, tt.want)
		}
	}
}

func TestAttributeBagClone(t *testing.T) {
	orig := AttributeBag{"color": "#000000", "inline": true}
	clone := orig.Clone()

	clone["color"] = "#ffffff"
	if orig["color"] != "#000000" {
		t.Error("Clone must not alias the original bag")
	}

	var nilBag AttributeBag
	if nilBag.Clone() != nil {
		t.Error("Clone of nil bag should be nil")
	}
}
