// Package domain defines the core business entities of the volunteer
// activity matcher: registered users, volunteer activities, and the
// day/category/location rule that decides which activities are surfaced
// to which users.
package domain
