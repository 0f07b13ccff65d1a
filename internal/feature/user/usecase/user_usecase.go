package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"course_backend/internal/feature/user/domain/entity"
	"course_backend/internal/platform/validation"
)

// dummyHash はメールアドレスに一致するユーザーがいない場合の比較対象です。
// 存在しないアカウントと誤ったパスワードで拒否までの時間を揃えます。
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExists を返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFound を返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// SignupInput はクライアントから送信された登録候補のユーザーです。
type SignupInput struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	// bcryptは72バイトを超える部分を無視する
	Password string `json:"password" validate:"required,max=72"`
}

// UserUsecase はユーザー登録と認証情報の検証を実装します。
type UserUsecase struct {
	users UserRepository
	cost  int
}

// NewUserUsecase は bcrypt.DefaultCost でハッシュ化する UserUsecase を生成します。
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users, cost: bcrypt.DefaultCost}
}

// WithHashCost はbcryptのコストを上書きします。テストでは bcrypt.MinCost を使用します。
func (u *UserUsecase) WithHashCost(cost int) *UserUsecase {
	u.cost = cost
	return u
}

// Signup は入力を検証し、パスワードをハッシュ化して新規ユーザーを保存します。
// バリデーションエラーとメール重複は apperr の種別として返します。
func (u *UserUsecase) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		EmailAddress: in.EmailAddress,
		Password:     string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate はメールアドレスからユーザーを取得し、保存済みハッシュとパスワードを照合します。
// 未登録のメールアドレスと誤ったパスワードはどちらも ErrAccessDenied を返します。
// not found 以外のストアエラーはそのまま返します。
func (u *UserUsecase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	passwordHash := dummyHash
	if user != nil {
		passwordHash = user.Password
	}
	// 処理時間を揃えるため常に比較する
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if user == nil {
		slog.Warn("User not found with email", "email", email)
		return nil, ErrAccessDenied
	}
	if compareErr != nil {
		slog.Warn("Authentication failure for user email", "email", email)
		return nil, ErrAccessDenied
	}

	slog.Info("Authentication successful for user email", "email", email)
	return user, nil
}
