package services

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"glow/internal/models"
	"glow/internal/storage"
)

var (
	// ErrInvalidCredentials, e-posta bilinmediğinde de parola yanlış
	// olduğunda da döner; hangisinin hatalı olduğu dışarı sızdırılmaz.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserExists, aynı e-postayla ikinci kayıt denemesinde döner.
	ErrUserExists = errors.New("user already exists")
)

// UserService, kullanıcı doğrulama, kayıt ve oturum kalıcılığını yönetir.
// Kullanıcı listesi "users", oturumdaki kimlik "currentUser" anahtarı
// altında saklanır.
type UserService struct {
	mu     sync.RWMutex
	store  storage.Store
	users  []models.User
	nextID int
}

// NewUserService, yeni bir UserService örneği oluşturur. Depoda kullanıcı
// yoksa demo kullanıcılarıyla başlar.
func NewUserService(store storage.Store) *UserService {
	us := &UserService{store: store}

	if err := storage.GetJSON(store, "users", &us.users); err != nil {
		us.users = seedUsers()
		us.persist()
		log.Printf("UserService - Seeded %d demo users", len(us.users))
	}

	for _, u := range us.users {
		if u.ID >= us.nextID {
			us.nextID = u.ID + 1
		}
	}
	return us
}

// seedUsers, depo boşken kullanılan demo kullanıcılarını üretir.
func seedUsers() []models.User {
	return []models.User{
		{
			ID:           1,
			FirstName:    "Emma",
			LastName:     "Wilson",
			Email:        "emma.wilson@example.com",
			PasswordHash: mustHash("password123"),
			CreatedAt:    time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           2,
			FirstName:    "Sophia",
			LastName:     "Martinez",
			Email:        "sophia.martinez@example.com",
			PasswordHash: mustHash("glowup2024"),
			CreatedAt:    time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt.DefaultCost ile üretim yalnızca bozuk girdi ile başarısız olur
		panic(err)
	}
	return string(hash)
}

// Validate, kimlik bilgilerini doğrular. E-posta harf duyarsız eşleştirilir,
// parola bcrypt ile karşılaştırılır. Başarısız doğrulama her iki durumda da
// aynı ErrInvalidCredentials sonucunu üretir.
func (us *UserService) Validate(email, password string) (*models.SessionUser, error) {
	us.mu.RLock()
	defer us.mu.RUnlock()

	user := us.findByEmail(email)
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &models.SessionUser{ID: user.ID, Name: user.FullName(), Email: user.Email}, nil
}

// Signup, yeni kullanıcı kaydeder. E-posta harf duyarsız olarak zaten
// kayıtlıysa ErrUserExists döner; durum değişmez.
func (us *UserService) Signup(firstName, lastName, email, password string) (*models.SessionUser, error) {
	us.mu.Lock()
	defer us.mu.Unlock()

	if us.findByEmail(email) != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           us.nextID,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	us.nextID++
	us.users = append(us.users, user)
	us.persist()

	log.Printf("UserService.Signup - Registered user %d (%s)", user.ID, user.Email)
	return &models.SessionUser{ID: user.ID, Name: user.FullName(), Email: user.Email}, nil
}

// findByEmail, e-postayı harf duyarsız arar. Çağıran kilidi tutmalıdır.
func (us *UserService) findByEmail(email string) *models.User {
	email = strings.ToLower(strings.TrimSpace(email))
	for i := range us.users {
		if strings.ToLower(us.users[i].Email) == email {
			return &us.users[i]
		}
	}
	return nil
}

// SetCurrentUser, doğrulanmış kimliği oturum anahtarının altına yazar;
// sonraki açılışlar kimlik bilgisi sormadan geri yükler.
func (us *UserService) SetCurrentUser(user *models.SessionUser) {
	if err := storage.SetJSON(us.store, "currentUser", user); err != nil {
		log.Printf("UserService.SetCurrentUser - Error saving session: %v", err)
	}
}

// CurrentUser, kayıtlı oturumu döndürür. Anahtar yok veya bozuksa nil döner.
func (us *UserService) CurrentUser() *models.SessionUser {
	var user models.SessionUser
	if err := storage.GetJSON(us.store, "currentUser", &user); err != nil {
		return nil
	}
	if user.ID == 0 {
		return nil
	}
	return &user
}

// Logout, oturumu koşulsuz temizler.
func (us *UserService) Logout() {
	if err := us.store.Delete("currentUser"); err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		log.Printf("UserService.Logout - Error clearing session: %v", err)
	}
}

func (us *UserService) persist() {
	if err := storage.SetJSON(us.store, "users", us.users); err != nil {
		log.Printf("UserService.persist - Error saving users: %v", err)
	}
}
