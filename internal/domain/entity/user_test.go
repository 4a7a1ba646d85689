package entity

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"patient", RolePatient, true},
		{"DOCTOR", RoleDoctor, true},
		{"  receptionist  ", RoleReceptionist, true},
		{"admin", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, ok := ParseRole(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseRole(%q) = (%q, %v), esperado (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseWorkShift(t *testing.T) {
	cases := []struct {
		in   string
		want WorkShift
		ok   bool
	}{
		{"morning", ShiftMorning, true},
		{"Afternoon", ShiftAfternoon, true},
		{"night", ShiftNight, true},
		{"dawn", "", false},
	}

	for _, c := range cases {
		got, ok := ParseWorkShift(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseWorkShift(%q) = (%q, %v), esperado (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestIsActive(t *testing.T) {
	active := true
	inactive := false

	if u := (&User{Status: &inactive}); u.IsActive() {
		t.Error("usuário com status false deveria estar inativo")
	}
	if u := (&User{Status: &active}); !u.IsActive() {
		t.Error("usuário com status true deveria estar ativo")
	}
	if u := (&User{}); !u.IsActive() {
		t.Error("status nulo deve contar como ativo")
	}
}
