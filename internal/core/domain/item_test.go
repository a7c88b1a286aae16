package domain

import "testing"

func TestValidType(t *testing.T) {
	if !ValidType(TypeLost) || !ValidType(TypeFound) {
		t.Fatal("lost and found must be valid")
	}
	if ValidType("stolen") {
		t.Fatal("unknown type accepted")
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []ItemCategory{CategoryElectronics, CategoryClothing, CategoryAccessories, CategoryDocuments, CategoryJewelry, CategoryOther} {
		if !ValidCategory(c) {
			t.Fatalf("%q must be valid", c)
		}
	}
	if ValidCategory("vehicles") {
		t.Fatal("unknown category accepted")
	}
}

func TestValidStatus(t *testing.T) {
	if !ValidStatus(StatusActive) || !ValidStatus(StatusResolved) {
		t.Fatal("active and resolved must be valid")
	}
	if ValidStatus("pending") {
		t.Fatal("unknown status accepted")
	}
}

func TestOwnedBy(t *testing.T) {
	item := Item{ID: "item_1", ReportedBy: "user_1"}
	if !item.OwnedBy("user_1") {
		t.Fatal("reporter must own the item")
	}
	if item.OwnedBy("user_2") {
		t.Fatal("non-reporter must not own the item")
	}
}
