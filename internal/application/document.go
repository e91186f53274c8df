package application

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/config"
	"github.com/linskybing/logistics-go/internal/domain/document"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/repository"
	"github.com/linskybing/logistics-go/internal/storage"
)

var (
	departmentAbbreviations = map[string]string{
		"Warehouse":      "Warehouse",
		"Transport":      "Trans",
		"Operations":     "Ops",
		"Administration": "Admin",
		"Finance":        "Fin",
		"HR":             "HR",
	}
	policyAreaAbbreviations = map[string]string{
		"Quality Control": "QC",
		"Safety":          "Safety",
		"Compliance":      "Comp",
		"Operations":      "Ops",
		"HR":              "HR",
		"Environment":     "Env",
		"Maintenance":     "Maint",
		"Personal":        "Personal",
	}
	roleAbbreviations = map[string]string{
		"Admin":            "Admin",
		"Driver":           "Driver",
		"Warehouse":        "Warehouse",
		"Executive":        "Exec",
		"Operational Lead": "OpsLead",
		"Logistics":        "Logistics",
		"HR Manager":       "HRMgr",
	}

	spaceRe = regexp.MustCompile(`\s+`)
)

// documentManagers may change the document library.
var documentManagers = []user.Role{user.RoleAdmin, user.RoleExecutive, user.RoleOperationalLead}

// DocumentService manages the company document library.
type DocumentService struct {
	Repos         *repository.Repos
	Store         storage.ObjectStore
	MaxUploadSize int64
	SignedURLTTL  time.Duration
}

func NewDocumentService(repos *repository.Repos, store storage.ObjectStore) *DocumentService {
	s := &DocumentService{
		Repos:         repos,
		Store:         store,
		MaxUploadSize: config.MaxUploadSize,
		SignedURLTTL:  config.SignedURLTTL,
	}
	if s.MaxUploadSize <= 0 {
		s.MaxUploadSize = 10 << 20
	}
	if s.SignedURLTTL <= 0 {
		s.SignedURLTTL = time.Hour
	}
	return s
}

// StandardFilename builds Dept_Policy_Role_Title_DDMMYYYY_Version.ext. Known
// names are abbreviated; others lose their whitespace. The title is cut to 20
// characters.
func StandardFilename(department, policyArea, role, title string, date time.Time, version, ext string) string {
	titleClean := []rune(spaceRe.ReplaceAllString(title, ""))
	if len(titleClean) > 20 {
		titleClean = titleClean[:20]
	}
	return fmt.Sprintf("%s_%s_%s_%s_%s_%s.%s",
		abbreviate(departmentAbbreviations, department),
		abbreviate(policyAreaAbbreviations, policyArea),
		abbreviate(roleAbbreviations, role),
		string(titleClean),
		date.Format("02012006"),
		strings.TrimSpace(version),
		ext,
	)
}

func abbreviate(table map[string]string, v string) string {
	v = strings.TrimSpace(v)
	if abbr, ok := table[v]; ok {
		return abbr
	}
	return spaceRe.ReplaceAllString(v, "")
}

// NormalizeTags lower-cases, trims and de-duplicates tags, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func parseDocumentStatus(raw string) (document.Status, error) {
	if strings.TrimSpace(raw) == "" {
		return document.StatusActive, nil
	}
	st := document.Status(strings.ToLower(strings.TrimSpace(raw)))
	if !st.Valid() {
		return "", invalidField("status", "status must be one of Active, Draft, Under Review, Archived")
	}
	return st, nil
}

// Upload stores the file under its standardised name and records it.
func (s *DocumentService) Upload(ctx context.Context, actor user.Identity, in document.UploadInput, up FileUpload) (*document.Document, error) {
	if err := requireRole(actor, documentManagers...); err != nil {
		return nil, err
	}
	if err := validateLibraryFile(up, s.MaxUploadSize); err != nil {
		return nil, err
	}
	status, err := parseDocumentStatus(in.Status)
	if err != nil {
		return nil, err
	}
	date, err := parseDate("document_date", in.DocumentDate)
	if err != nil {
		return nil, err
	}
	if date == nil {
		return nil, invalidField("document_date", "Document date is required")
	}

	ext := storage.Ext(up.Name)
	fileName := StandardFilename(in.Department, in.PolicyArea, in.ResponsibleRole, in.Title, *date, in.Version, ext)
	objectPath := storage.DocumentPath(in.Department, fileName)
	mimeType := baseContentType(up.ContentType)

	if err := s.Store.Put(ctx, objectPath, mimeType, up.Reader, up.Size); err != nil {
		return nil, infra("upload document", err)
	}

	doc := &document.Document{
		Title:           strings.TrimSuffix(fileName, "."+ext),
		FilePath:        objectPath,
		FileName:        up.Name,
		FileSize:        up.Size,
		MimeType:        mimeType,
		Department:      strings.TrimSpace(in.Department),
		PolicyArea:      strings.TrimSpace(in.PolicyArea),
		ResponsibleRole: strings.TrimSpace(in.ResponsibleRole),
		Status:          status,
		Version:         strings.TrimSpace(in.Version),
		Tags:            NormalizeTags(in.Tags),
		DocumentDate:    *date,
		UploadedBy:      actor.ID,
	}
	if err := s.Repos.Document.CreateDocument(ctx, doc); err != nil {
		bestEffort("remove orphaned object "+objectPath, func() error {
			return s.Store.Remove(context.WithoutCancel(ctx), objectPath)
		})
		return nil, infra("create document", err)
	}
	return doc, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, filter document.ListFilter) ([]document.Document, error) {
	list, err := s.Repos.Document.ListDocuments(ctx, filter)
	if err != nil {
		return nil, infra("list documents", err)
	}
	return list, nil
}

// GetDocument returns the document with a short-lived download link.
func (s *DocumentService) GetDocument(ctx context.Context, id uuid.UUID) (document.WithURL, error) {
	doc, err := s.Repos.Document.GetDocumentByID(ctx, id)
	if err != nil {
		return document.WithURL{}, lookupErr(err, ErrDocumentNotFound, "load document")
	}
	url, err := s.Store.SignedURL(ctx, doc.FilePath, s.SignedURLTTL)
	if err != nil {
		return document.WithURL{}, infra("sign document url", err)
	}
	return document.WithURL{Document: doc, URL: url}, nil
}

func (s *DocumentService) UpdateDocument(ctx context.Context, actor user.Identity, id uuid.UUID, in document.UpdateInput) (*document.Document, error) {
	if err := requireRole(actor, documentManagers...); err != nil {
		return nil, err
	}
	doc, err := s.Repos.Document.GetDocumentByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrDocumentNotFound, "load document")
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, invalidField("title", "Title is required")
		}
		doc.Title = title
	}
	if in.Status != nil {
		if doc.Status, err = parseDocumentStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	if in.PolicyArea != nil {
		doc.PolicyArea = strings.TrimSpace(*in.PolicyArea)
	}
	if in.Version != nil {
		doc.Version = strings.TrimSpace(*in.Version)
	}
	if in.Tags != nil {
		doc.Tags = NormalizeTags(in.Tags)
	}

	if err := s.Repos.Document.SaveDocument(ctx, &doc); err != nil {
		return nil, infra("save document", err)
	}
	return &doc, nil
}

// DeleteDocument removes the row, then the stored object on a best-effort basis.
func (s *DocumentService) DeleteDocument(ctx context.Context, actor user.Identity, id uuid.UUID) error {
	if err := requireRole(actor, documentManagers...); err != nil {
		return err
	}
	doc, err := s.Repos.Document.GetDocumentByID(ctx, id)
	if err != nil {
		return lookupErr(err, ErrDocumentNotFound, "load document")
	}
	if err := s.Repos.Document.DeleteDocument(ctx, id); err != nil {
		return infra("delete document", err)
	}
	removeObjects(ctx, s.Store, []string{doc.FilePath})
	return nil
}
